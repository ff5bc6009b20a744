package content

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewStore(sqlx.NewDb(mockDB, "sqlite3")), mock
}

func TestActiveSkillsOrdering(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "proficiency", "sort_order", "is_active"}).
		AddRow(2, "CSS", "frontend", 85, 1, true).
		AddRow(1, "HTML", "frontend", 90, 1, true).
		AddRow(3, "Git", "tools", 80, 2, true)
	mock.ExpectQuery(`SELECT (.+) FROM skills WHERE is_active = TRUE ORDER BY sort_order ASC, name ASC`).
		WillReturnRows(rows)

	skills, err := store.ActiveSkills(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "CSS", skills[0].Name)
	assert.Equal(t, "Git", skills[2].Name)
}

func TestActiveSkillsEmptyTable(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM skills`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "proficiency", "sort_order", "is_active"}))

	skills, err := store.ActiveSkills(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestActiveExperiencesOrdering(t *testing.T) {
	store, mock := newMockStore(t)

	newer := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "company", "description", "start_date", "end_date", "is_current", "sort_order", "is_active"}).
		AddRow(2, "Senior Developer", "Acme", "", newer, nil, true, 1, true).
		AddRow(1, "Developer", "Initech", "", older, newer, false, 2, true)
	mock.ExpectQuery(`SELECT (.+) FROM experiences WHERE is_active = TRUE ORDER BY sort_order ASC, start_date DESC`).
		WillReturnRows(rows)

	out, err := store.ActiveExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].IsCurrent)
	assert.Nil(t, out[0].EndDate)
	require.NotNil(t, out[1].EndDate)
	assert.Equal(t, newer, *out[1].EndDate)
}

func TestActiveTestimonialsOrdering(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM testimonials WHERE is_active = TRUE ORDER BY sort_order ASC, given_on ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "rating", "sort_order", "is_active"}).
			AddRow(1, "A Client", 5, 1, true))

	out, err := store.ActiveTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Rating)
}

func TestDeleteRejectsUnknownTable(t *testing.T) {
	store, _ := newMockStore(t)

	err := store.Delete(context.Background(), "users; DROP TABLE users", 1)
	assert.Error(t, err)
}

func TestValidSectionType(t *testing.T) {
	assert.True(t, ValidSectionType(SectionServices))
	assert.True(t, ValidSectionType(SectionCustom))
	assert.False(t, ValidSectionType("carousel"))
}
