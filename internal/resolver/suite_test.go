package resolver

import (
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// resolverTestSuite provides an in-memory database and fixture helpers for
// the per-entity resolver suites that embed it.
type resolverTestSuite struct {
	suite.Suite
	db       *gorm.DB
	resolver *Resolver
}

// SetupTest runs before each test
func (suite *resolverTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.Organization{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
	)
	suite.Require().NoError(err)

	suite.resolver = New(
		repository.NewOrganizationRepository(suite.db),
		repository.NewProjectRepository(suite.db),
		repository.NewTaskRepository(suite.db),
		repository.NewCommentRepository(suite.db),
	)
}

// TearDownTest runs after each test
func (suite *resolverTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data

func (suite *resolverTestSuite) createTestOrganization(name, slug string) *models.Organization {
	org := &models.Organization{
		Name:         name,
		Slug:         slug,
		ContactEmail: slug + "@example.com",
	}
	suite.Require().NoError(suite.db.Create(org).Error)
	return org
}

func (suite *resolverTestSuite) createTestProject(orgID uint64, name string, status models.ProjectStatus) *models.Project {
	project := &models.Project{
		OrganizationID: orgID,
		Name:           name,
		Description:    "Test Description",
		Status:         status,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *resolverTestSuite) createTestProjectAt(orgID uint64, name string, createdAt time.Time) *models.Project {
	project := &models.Project{
		OrganizationID: orgID,
		Name:           name,
		Status:         models.ProjectStatusActive,
		CreatedAt:      createdAt,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

func (suite *resolverTestSuite) createTestTask(projectID uint64, title string, status models.TaskStatus, dueDate *time.Time) *models.Task {
	task := &models.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
		DueDate:   dueDate,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *resolverTestSuite) createTestTaskAt(projectID uint64, title string, createdAt time.Time) *models.Task {
	task := &models.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    models.TaskStatusTodo,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *resolverTestSuite) createTestComment(taskID uint64, content string) *models.Comment {
	comment := &models.Comment{
		TaskID:      taskID,
		Content:     content,
		AuthorEmail: "author@example.com",
	}
	suite.Require().NoError(suite.db.Create(comment).Error)
	return comment
}

func (suite *resolverTestSuite) createTestCommentAt(taskID uint64, content string, createdAt time.Time) *models.Comment {
	comment := &models.Comment{
		TaskID:      taskID,
		Content:     content,
		AuthorEmail: "author@example.com",
		CreatedAt:   createdAt,
	}
	suite.Require().NoError(suite.db.Create(comment).Error)
	return comment
}

func (suite *resolverTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}
