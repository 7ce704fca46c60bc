package repo

import (
	"testing"

	banrepo "github.com/fuelwatch/fuelwatch/internal/repo/ban-repo"
	proposalrepo "github.com/fuelwatch/fuelwatch/internal/repo/proposal-repo"
	stationrepo "github.com/fuelwatch/fuelwatch/internal/repo/station-repo"
	userrepo "github.com/fuelwatch/fuelwatch/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.BanRepo)
	assert.NotNil(t, repo.ProposalRepo)
	assert.NotNil(t, repo.StationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &banrepo.Repository{}, repo.BanRepo)
	assert.IsType(t, &proposalrepo.Repository{}, repo.ProposalRepo)
	assert.IsType(t, &stationrepo.Repository{}, repo.StationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
