package patient

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRepo struct {
	patients map[string]*entities.Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[string]*entities.Patient)}
}

func (m *mockRepo) GetPatientByID(_ context.Context, id string) (*entities.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *mockRepo) GetPatientsByRoom(_ context.Context, roomNumber, state string) ([]*entities.Patient, error) {
	var result []*entities.Patient
	for _, p := range m.patients {
		if p.RoomNumber == roomNumber && p.State == state {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) CreatePatient(_ context.Context, p *entities.Patient) error {
	m.patients[p.ID.String()] = p
	return nil
}

func (m *mockRepo) UpdatePatient(_ context.Context, p *entities.Patient) error {
	m.patients[p.ID.String()] = p
	return nil
}

func (m *mockRepo) DeletePatient(_ context.Context, id string) (int64, error) {
	if _, ok := m.patients[id]; !ok {
		return 0, nil
	}
	delete(m.patients, id)
	return 1, nil
}

func TestAddAndGetPatient(t *testing.T) {
	service := NewPatientService(newMockRepo())

	created, err := service.AddPatient(context.Background(), domain.AddPatientRequest{
		Name:       "Ward Patient",
		RoomNumber: "101",
	})
	require.NoError(t, err)
	assert.Equal(t, StateActive, created.State)

	got, err := service.GetPatientByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ward Patient", got.Name)
	assert.Equal(t, "101", got.RoomNumber)
}

func TestGetPatientNotFound(t *testing.T) {
	service := NewPatientService(newMockRepo())

	_, err := service.GetPatientByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestGetPatientsByRoomValidatesState(t *testing.T) {
	service := NewPatientService(newMockRepo())

	_, err := service.GetPatientsByRoom(context.Background(), "101", "resting")
	assert.ErrorIs(t, err, domain.ErrInvalidPatientState)
}

func TestGetPatientsByRoomFiltersByState(t *testing.T) {
	repo := newMockRepo()
	service := NewPatientService(repo)

	active, err := service.AddPatient(context.Background(), domain.AddPatientRequest{Name: "A", RoomNumber: "101"})
	require.NoError(t, err)
	discharged, err := service.AddPatient(context.Background(), domain.AddPatientRequest{Name: "B", RoomNumber: "101"})
	require.NoError(t, err)

	err = service.UpdatePatient(context.Background(), discharged.ID, domain.UpdatePatientRequest{State: StateDischarged})
	require.NoError(t, err)

	result, err := service.GetPatientsByRoom(context.Background(), "101", StateActive)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, active.ID, result[0].ID)
}

func TestUpdatePatientNotFound(t *testing.T) {
	service := NewPatientService(newMockRepo())

	err := service.UpdatePatient(context.Background(), uuid.New().String(), domain.UpdatePatientRequest{State: StateDischarged})
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}

func TestDeletePatientNotFound(t *testing.T) {
	service := NewPatientService(newMockRepo())

	err := service.DeletePatient(context.Background(), domain.DeletePatientRequest{PatientID: uuid.New().String()})
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
}
