package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemoryStore())
}

// Runs the same suite against Postgres when TEST_DATABASE_URL is set.
func TestPostgresStore(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres store tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := Connect(ctx, dbURL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, RunMigrations(conn, "../../migrations"))
	_, err = conn.Exec(`TRUNCATE slides, projects, applications, timetables, users RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)

	runStoreSuite(t, NewStore(conn))
}

func runStoreSuite(t *testing.T, store Store) {
	ctx := context.Background()

	name := "Imam"
	userID, err := store.CreateUser(ctx, "admin@example.com", "hashed", &name)
	require.NoError(t, err)
	require.Greater(t, userID, 0)

	t.Run("users", func(t *testing.T) {
		u, err := store.GetUserByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, userID, u.ID)

		_, err = store.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		renamed := "Muezzin"
		require.NoError(t, store.UpdateUserProfile(ctx, userID, "admin@example.com", &renamed))
		u, err = store.GetUserByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "Muezzin", *u.Name)

		assert.ErrorIs(t, store.UpdateUserProfile(ctx, userID+1000, "x@example.com", nil), ErrNotFound)
	})

	t.Run("timetable", func(t *testing.T) {
		_, err := store.GetTimetable(ctx)
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, store.SaveTimetable(ctx, prayer.EventsPageTable, userID))
		got, err := store.GetTimetable(ctx)
		require.NoError(t, err)
		assert.Equal(t, prayer.EventsPageTable, got)

		require.NoError(t, store.SaveTimetable(ctx, prayer.DefaultTable, userID))
		got, err = store.GetTimetable(ctx)
		require.NoError(t, err)
		assert.Equal(t, prayer.DefaultTable, got)
	})

	t.Run("applications", func(t *testing.T) {
		for _, kind := range []string{model.ApplicationMember, model.ApplicationZakath, model.ApplicationMember} {
			_, err := store.CreateApplication(ctx, model.Application{
				Reference: uuid.NewString(),
				Kind:      kind,
				FullName:  "Abdullah Perera",
				Email:     "abdullah@example.com",
				Phone:     "+94 77 123 4567",
				Fields:    model.Fields{"household_size": "4"},
			})
			require.NoError(t, err)
		}

		members, err := store.ListApplications(ctx, model.ApplicationMember)
		require.NoError(t, err)
		assert.Len(t, members, 2)
		assert.Equal(t, "4", members[0].Fields["household_size"])

		all, err := store.ListApplications(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("projects", func(t *testing.T) {
		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		seed := []NewProject{
			{Title: "New Masjid Construction", Category: "construction", Description: "A new masjid in Negombo East."},
			{Title: "Main Masjid Renovation", Category: "renovation", Description: "New flooring, lighting, and sound system."},
			{Title: "Islamic Education Center", Category: "education", Description: "Islamic studies for children and adults."},
			{Title: "Community Library", Category: "community", Description: "Islamic literature and learning resources."},
			{Title: "Youth Activity Center", Category: "community", Description: "Space for youth activities."},
			{Title: "Elderly Care Facility", Category: "community", Description: "Care for elderly community members."},
			{Title: "Parking Extension", Category: "construction", Description: "Extra parking for Jumu'ah."},
		}
		ids := make([]int, 0, len(seed))
		for i, p := range seed {
			p.Currency = "LKR"
			p.StartDate = start.AddDate(0, i, 0)
			created, err := store.CreateProject(ctx, p, userID)
			require.NoError(t, err)
			ids = append(ids, created.ID)
		}

		page, total, err := store.ListProjects(ctx, ProjectFilter{})
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		require.Len(t, page, DefaultPageSize)
		assert.Equal(t, "New Masjid Construction", page[0].Title)

		rest, _, err := store.ListProjects(ctx, ProjectFilter{Category: "all", Offset: DefaultPageSize})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "Parking Extension", rest[0].Title)

		community, total, err := store.ListProjects(ctx, ProjectFilter{Category: "community"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, community, 3)

		found, total, err := store.ListProjects(ctx, ProjectFilter{Search: "ISLAMIC"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, found, 2)

		none, total, err := store.ListProjects(ctx, ProjectFilter{Search: "100%"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, none)

		require.NoError(t, store.UpdateProjectProgress(ctx, ids[0], 70, 50))
		p, err := store.GetProject(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, 70, p.Progress)
		assert.Equal(t, 50, p.Volunteers)

		require.NoError(t, store.DeleteProject(ctx, ids[6]))
		_, err = store.GetProject(ctx, ids[6])
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.DeleteProject(ctx, ids[6]), ErrNotFound)
	})

	t.Run("slides", func(t *testing.T) {
		first, err := store.CreateSlide(ctx, "Welcome", nil, "/uploads/welcome.jpg", userID)
		require.NoError(t, err)
		caption := "Every Friday"
		second, err := store.CreateSlide(ctx, "Jumu'ah", &caption, "/uploads/jumuah.jpg", userID)
		require.NoError(t, err)
		assert.Equal(t, first.Position+1, second.Position)

		slides, err := store.ListSlides(ctx)
		require.NoError(t, err)
		require.Len(t, slides, 2)
		assert.Equal(t, "Welcome", slides[0].Title)

		require.NoError(t, store.DeleteSlide(ctx, first.ID))
		assert.ErrorIs(t, store.DeleteSlide(ctx, first.ID), ErrNotFound)
	})
}
