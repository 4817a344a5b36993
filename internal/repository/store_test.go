package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

func TestIdentifiersSharedAcrossEntityKinds(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	branch := &models.Branch{Name: "Computer Science", Code: "CSE"}
	require.NoError(t, NewBranchRepository(store).Create(ctx, branch))

	teacher := &models.Teacher{Name: "Dr. Rao", EmployeeID: "EMP-1"}
	require.NoError(t, NewTeacherRepository(store).Create(ctx, teacher))

	room := &models.Room{Number: "101", Building: "Main Block"}
	require.NoError(t, NewRoomRepository(store).Create(ctx, room))

	// One counter serves every kind, so ids never repeat across tables.
	assert.Equal(t, 1, branch.ID)
	assert.Equal(t, 2, teacher.ID)
	assert.Equal(t, 3, room.ID)
}

func TestTimetableSaveOverwritesPerSection(t *testing.T) {
	store := NewStore()
	repo := NewTimetableRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.Timetable{ID: "tt-1", SectionID: 5}))
	require.NoError(t, repo.Save(ctx, models.Timetable{ID: "tt-2", SectionID: 5}))

	stored, err := repo.FindBySectionID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "tt-2", stored.ID)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestTimetableFindMissing(t *testing.T) {
	repo := NewTimetableRepository(NewStore())

	_, err := repo.FindBySectionID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSectionDeleteRemovesTimetable(t *testing.T) {
	store := NewStore()
	sections := NewSectionRepository(store)
	timetables := NewTimetableRepository(store)
	ctx := context.Background()

	section := &models.Section{Name: "CSE-A", Year: 2, Semester: 3}
	require.NoError(t, sections.Create(ctx, section))
	require.NoError(t, timetables.Save(ctx, models.Timetable{ID: "tt-1", SectionID: section.ID}))

	require.NoError(t, sections.Delete(ctx, section.ID))

	_, err := timetables.FindBySectionID(ctx, section.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, sections.Delete(ctx, section.ID), ErrRecordNotFound)
}

func TestCourseListBySectionKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	courses := NewCourseRepository(store)
	ctx := context.Background()

	for _, subjectID := range []int{11, 12, 13} {
		require.NoError(t, courses.Create(ctx, &models.Course{SectionID: 1, SubjectID: subjectID}))
	}
	require.NoError(t, courses.Create(ctx, &models.Course{SectionID: 2, SubjectID: 14}))

	listed, err := courses.ListBySectionID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 11, listed[0].SubjectID)
	assert.Equal(t, 12, listed[1].SubjectID)
	assert.Equal(t, 13, listed[2].SubjectID)
}

func TestTeacherExistsByEmployeeID(t *testing.T) {
	store := NewStore()
	teachers := NewTeacherRepository(store)
	ctx := context.Background()

	require.NoError(t, teachers.Create(ctx, &models.Teacher{Name: "Dr. Rao", EmployeeID: "EMP-1"}))

	exists, err := teachers.ExistsByEmployeeID(ctx, "EMP-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = teachers.ExistsByEmployeeID(ctx, "EMP-2")
	require.NoError(t, err)
	assert.False(t, exists)
}
