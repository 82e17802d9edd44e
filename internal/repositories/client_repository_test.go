package repositories

import (
	"fmt"
	"testing"

	"alumni_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Education{},
		&models.Client{},
		&models.Recruited{},
		&models.Further{},
		&models.SelfEmployed{},
		&models.Searching{},
	))

	require.NoError(t, db.Create(&models.Education{
		ID: "EDU001", Name: models.EducationSoftwareDevelopment,
	}).Error)

	return db
}

func newClient(email string, status models.ClientStatus) *models.Client {
	return &models.Client{
		FirstName:    "Aliya",
		LastName:     "Bekova",
		Email:        email,
		Phone:        "+77011234567",
		EducationID:  "EDU001",
		AcademicYear: "2024",
		Status:       status,
	}
}

func TestCreateWithOutcome(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	client := newClient("aliya@test.com", models.ClientStatusSearching)
	err := repo.CreateWithOutcome(db, client, &models.Searching{Duration: "3 months"})
	require.NoError(t, err)
	require.NotEmpty(t, client.ID)

	outcome, err := repo.OutcomeFor(db, client.ID)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, models.ClientStatusSearching, outcome.OutcomeStatus())
}

func TestCreateWithOutcome_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	first := newClient("dup@test.com", models.ClientStatusSearching)
	require.NoError(t, repo.CreateWithOutcome(db, first, &models.Searching{Duration: "1 month"}))

	second := newClient("dup@test.com", models.ClientStatusRecruited)
	err := repo.CreateWithOutcome(db, second, &models.Recruited{Company: "Kolesa Group"})
	assert.ErrorIs(t, err, ErrClientAlreadyExists)
}

func TestUpdateWithOutcome_ReplacesVariant(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	client := newClient("switch@test.com", models.ClientStatusSearching)
	require.NoError(t, repo.CreateWithOutcome(db, client, &models.Searching{Duration: "3 months"}))

	client.Status = models.ClientStatusRecruited
	err := repo.UpdateWithOutcome(db, client, &models.Recruited{
		Title: "Backend Developer", Company: "Kolesa Group",
	})
	require.NoError(t, err)

	// Осталась ровно одна запись исхода, и это новый вариант
	outcome, err := repo.OutcomeFor(db, client.ID)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, models.ClientStatusRecruited, outcome.OutcomeStatus())

	var searchingCount int64
	require.NoError(t, db.Model(&models.Searching{}).
		Where("client_id = ?", client.ID).Count(&searchingCount).Error)
	assert.EqualValues(t, 0, searchingCount)
}

func TestUpdateWithOutcome_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	ghost := newClient("ghost@test.com", models.ClientStatusSearching)
	ghost.ID = "no-such-id"

	err := repo.UpdateWithOutcome(db, ghost, &models.Searching{Duration: "1 month"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestEmailTaken_ExcludesSelfAndDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	client := newClient("taken@test.com", models.ClientStatusSearching)
	require.NoError(t, repo.CreateWithOutcome(db, client, &models.Searching{Duration: "1 month"}))

	taken, err := repo.EmailTaken(db, "taken@test.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	// Сам клиент конфликтом не считается
	taken, err = repo.EmailTaken(db, "taken@test.com", client.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	// После мягкого удаления email свободен
	require.NoError(t, repo.SoftDelete(db, client.ID))
	taken, err = repo.EmailTaken(db, "taken@test.com", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestSoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	client := newClient("bye@test.com", models.ClientStatusSearching)
	require.NoError(t, repo.CreateWithOutcome(db, client, &models.Searching{Duration: "1 month"}))

	require.NoError(t, repo.SoftDelete(db, client.ID))

	_, err := repo.FindByID(db, client.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)

	// Строка физически на месте
	var unscoped models.Client
	require.NoError(t, db.Unscoped().First(&unscoped, "id = ?", client.ID).Error)
	assert.True(t, unscoped.DeletedAt.Valid)

	// Повторное удаление - not found
	assert.ErrorIs(t, repo.SoftDelete(db, client.ID), ErrClientNotFound)
}

func TestFindWithFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	for i := 0; i < 12; i++ {
		client := newClient(fmt.Sprintf("filter_%02d@test.com", i), models.ClientStatusSearching)
		if i == 0 {
			client.FirstName = "Arman"
		}
		require.NoError(t, repo.CreateWithOutcome(db, client, &models.Searching{Duration: "1 month"}))
	}

	// Первая страница полная, счетчик общий
	clients, total, err := repo.FindWithFilter(db, ClientFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, clients, 10)
	assert.EqualValues(t, 12, total)

	// Вторая страница - остаток
	clients, _, err = repo.FindWithFilter(db, ClientFilter{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	// Поиск без учета регистра
	clients, total, err = repo.FindWithFilter(db, ClientFilter{Search: "ARMAN", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, clients, 1)
	assert.Equal(t, "Arman", clients[0].FirstName)
}

func TestCountByEducationName(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository()

	require.NoError(t, db.Create(&models.Education{
		ID: "EDU002", Name: models.EducationDataScience,
	}).Error)

	sd := newClient("sd@test.com", models.ClientStatusSearching)
	require.NoError(t, repo.CreateWithOutcome(db, sd, &models.Searching{Duration: "1 month"}))

	ds := newClient("ds@test.com", models.ClientStatusSearching)
	ds.EducationID = "EDU002"
	require.NoError(t, repo.CreateWithOutcome(db, ds, &models.Searching{Duration: "1 month"}))

	count, err := repo.CountByEducationName(db, models.EducationSoftwareDevelopment)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = repo.CountByEducationName(db, models.EducationDataScience)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
