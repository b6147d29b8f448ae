package logic

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SafidyRH/test-technique-nexta/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "a2f7c9b4-1d3e-4f5a-8b6c-7d8e9f0a1b2c"

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-3))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 7, NormalizePage(7))
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(-1))
	assert.Equal(t, 1, NormalizePageSize(1))
	assert.Equal(t, MaxPageSize, NormalizePageSize(MaxPageSize))
	assert.Equal(t, MaxPageSize, NormalizePageSize(999))
}

func TestCanReceiveContributions(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		exists   bool
		expected bool
	}{
		{name: "active project", status: "active", exists: true, expected: true},
		{name: "completed project", status: "completed", exists: true, expected: false},
		{name: "cancelled project", status: "cancelled", exists: true, expected: false},
		{name: "missing project", exists: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			projectLogic := NewProjectLogic(db)

			rows := sqlmock.NewRows([]string{"id", "status"})
			if tt.exists {
				rows.AddRow(testProjectID, tt.status)
			}
			mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnRows(rows)

			assert.Equal(t, tt.expected, projectLogic.CanReceiveContributions(testProjectID))
		})
	}
}

func TestCanReceiveContributionsFailsClosed(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnError(assert.AnError)

	// 查询失败视为不可接受贡献
	assert.False(t, projectLogic.CanReceiveContributions(testProjectID))
}

func TestCreateProjectValidationFailure(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	result := projectLogic.CreateProject(&validation.CreateProjectInput{
		Title:       "Reboisement de la côte Est",
		Description: "Un projet de reboisement communautaire sur la côte Est.",
		Goal:        999,
	})

	require.False(t, result.Success)
	assert.Equal(t, CodeValidationFailed, result.Error.Code)
	assert.Contains(t, result.Error.Details, "goal")
	// 校验失败不应触发任何存储操作
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProjectNotFoundShortCircuitsValidation(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	badTitle := "ab"
	result := projectLogic.UpdateProject(testProjectID, &validation.UpdateProjectInput{
		Title: &badTitle,
	})

	// 不存在的项目直接返回NOT_FOUND，不校验请求体
	require.False(t, result.Success)
	assert.Equal(t, CodeNotFound, result.Error.Code)
	assert.Nil(t, result.Error.Details)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProjectWithContributionsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	mock.ExpectQuery(`SELECT \* FROM "project_stats"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	result := projectLogic.GetProjectWithContributions(testProjectID)

	require.False(t, result.Success)
	assert.Equal(t, CodeNotFound, result.Error.Code)
}

func TestGetProjectWithContributionsScenario(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	// 目标100000，两位捐赠者贡献30000和45000
	statsRows := sqlmock.NewRows([]string{"id", "title", "goal", "status", "total_raised", "total_contributors", "progress_percentage", "is_funded"}).
		AddRow(testProjectID, "Reboisement", 100000.0, "active", 75000.0, 2, 75.0, false)
	mock.ExpectQuery(`SELECT \* FROM "project_stats"`).WillReturnRows(statsRows)

	contributionRows := sqlmock.NewRows([]string{"id", "project_id", "donor_name", "amount"}).
		AddRow("c2", testProjectID, "Vola", 45000.0).
		AddRow("c1", testProjectID, "Rakoto", 30000.0)
	mock.ExpectQuery(`SELECT \* FROM "contributions"`).WillReturnRows(contributionRows)

	result := projectLogic.GetProjectWithContributions(testProjectID)

	require.True(t, result.Success)
	data, ok := result.Data.(*ProjectWithContributions)
	require.True(t, ok)
	assert.Equal(t, 75000.0, data.Project.TotalRaised)
	assert.Equal(t, int64(2), data.Project.TotalContributors)
	assert.Equal(t, 75.0, data.Project.ProgressPercentage)
	assert.False(t, data.Project.IsFunded)
	assert.Len(t, data.Contributions, 2)
}

func TestDeleteProjectNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	projectLogic := NewProjectLogic(db)

	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))

	result := projectLogic.DeleteProject(testProjectID)

	require.False(t, result.Success)
	assert.Equal(t, CodeNotFound, result.Error.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
