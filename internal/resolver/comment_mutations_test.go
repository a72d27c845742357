package resolver

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-tracker-api/internal/models"
)

// CommentResolverTestSuite covers comment queries and mutations
type CommentResolverTestSuite struct {
	resolverTestSuite
}

func (suite *CommentResolverTestSuite) TestAddComment_TrimsContent() {
	org := suite.createTestOrganization("Acme Corp", "acme")
	project := suite.createTestProject(org.ID, "Website", models.ProjectStatusActive)
	task := suite.createTestTask(project.ID, "Design", models.TaskStatusTodo, nil)

	payload := suite.resolver.AddComment(AddCommentArgs{
		OrganizationSlug: "acme",
		TaskID:           task.ID,
		Content:          "  hello  ",
		AuthorEmail:      "author@example.com",
	})

	suite.True(payload.Success)
	suite.Require().NotNil(payload.Comment)
	suite.Equal("hello", payload.Comment.Content)

	var stored models.Comment
	suite.Require().NoError(suite.db.First(&stored, payload.Comment.ID).Error)
	suite.Equal("hello", stored.Content)
}

func (suite *CommentResolverTestSuite) TestAddComment_WhitespaceOnly() {
	org := suite.createTestOrganization("Acme Corp", "acme")
	project := suite.createTestProject(org.ID, "Website", models.ProjectStatusActive)
	task := suite.createTestTask(project.ID, "Design", models.TaskStatusTodo, nil)

	payload := suite.resolver.AddComment(AddCommentArgs{
		OrganizationSlug: "acme",
		TaskID:           task.ID,
		Content:          "   ",
		AuthorEmail:      "author@example.com",
	})

	suite.False(payload.Success)
	suite.Require().Len(payload.Errors, 1)
	suite.Equal("content", payload.Errors[0].Field)
	suite.Equal(int64(0), suite.countRows(&models.Comment{}))
}

func (suite *CommentResolverTestSuite) TestAddComment_TaskOfForeignTenant() {
	org := suite.createTestOrganization("Acme Corp", "acme")
	suite.createTestOrganization("Globex", "globex")
	project := suite.createTestProject(org.ID, "Website", models.ProjectStatusActive)
	task := suite.createTestTask(project.ID, "Design", models.TaskStatusTodo, nil)

	payload := suite.resolver.AddComment(AddCommentArgs{
		OrganizationSlug: "globex",
		TaskID:           task.ID,
		Content:          "hello",
		AuthorEmail:      "author@example.com",
	})

	suite.False(payload.Success)
	suite.Require().Len(payload.Errors, 1)
	suite.Equal("task_id", payload.Errors[0].Field)
}

func (suite *CommentResolverTestSuite) TestCommentsByTask_TenantIsolation() {
	org := suite.createTestOrganization("Acme Corp", "acme")
	suite.createTestOrganization("Globex", "globex")
	project := suite.createTestProject(org.ID, "Website", models.ProjectStatusActive)
	task := suite.createTestTask(project.ID, "Design", models.TaskStatusTodo, nil)
	suite.createTestComment(task.ID, "hello")

	scoped, err := suite.resolver.CommentsByTask(CommentsByTaskArgs{
		TaskID:           task.ID,
		OrganizationSlug: "acme",
	})
	suite.Require().NoError(err)
	suite.Len(scoped, 1)

	foreign, err := suite.resolver.CommentsByTask(CommentsByTaskArgs{
		TaskID:           task.ID,
		OrganizationSlug: "globex",
	})
	suite.Require().NoError(err)
	suite.Empty(foreign)
}

func TestCommentResolverTestSuite(t *testing.T) {
	suite.Run(t, new(CommentResolverTestSuite))
}
