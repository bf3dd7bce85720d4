package booking

import (
	"context"
	"errors"

	"veranera/models"
)

// mockBookingRepo is a function-field fake; nil fields panic, making
// unexpected repository calls fail the test loudly.
type mockBookingRepo struct {
	CreateFn               func(booking *models.Booking) error
	GetByIDFn              func(id string) (*models.Booking, error)
	GetByStripeSessionIDFn func(sessionID string) (*models.Booking, error)
	GetAllFn               func() ([]models.Booking, error)
	DeleteFn               func(id string) error
	TransitionFn           func(id string, from, to models.BookingStatus) (bool, error)
	SetStripeSessionIDFn   func(id, sessionID string) error
	SoldUnitsFn            func(roomTypeIDs []string) (map[string]int, error)
}

func (m *mockBookingRepo) Create(booking *models.Booking) error { return m.CreateFn(booking) }
func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	return m.GetByIDFn(id)
}
func (m *mockBookingRepo) GetByStripeSessionID(sessionID string) (*models.Booking, error) {
	return m.GetByStripeSessionIDFn(sessionID)
}
func (m *mockBookingRepo) GetAll() ([]models.Booking, error) { return m.GetAllFn() }
func (m *mockBookingRepo) Delete(id string) error            { return m.DeleteFn(id) }
func (m *mockBookingRepo) Transition(id string, from, to models.BookingStatus) (bool, error) {
	return m.TransitionFn(id, from, to)
}
func (m *mockBookingRepo) SetStripeSessionID(id, sessionID string) error {
	return m.SetStripeSessionIDFn(id, sessionID)
}
func (m *mockBookingRepo) SoldUnits(roomTypeIDs []string) (map[string]int, error) {
	return m.SoldUnitsFn(roomTypeIDs)
}

type mockRetreatRepo struct {
	CreateFn          func(retreat *models.Retreat) error
	UpdateFn          func(retreat *models.Retreat) error
	DeleteFn          func(id string) error
	GetByIDFn         func(id string) (*models.Retreat, error)
	GetBySlugFn       func(slug string) (*models.Retreat, error)
	GetByRoomTypeIDFn func(roomTypeID string) (*models.Retreat, error)
	GetAllFn          func() ([]models.Retreat, error)
	GetPublishedFn    func() ([]models.Retreat, error)
	SetPublishedFn    func(slug string, published bool) error
}

func (m *mockRetreatRepo) Create(retreat *models.Retreat) error { return m.CreateFn(retreat) }
func (m *mockRetreatRepo) Update(retreat *models.Retreat) error { return m.UpdateFn(retreat) }
func (m *mockRetreatRepo) Delete(id string) error               { return m.DeleteFn(id) }
func (m *mockRetreatRepo) GetByID(id string) (*models.Retreat, error) {
	return m.GetByIDFn(id)
}
func (m *mockRetreatRepo) GetBySlug(slug string) (*models.Retreat, error) {
	return m.GetBySlugFn(slug)
}
func (m *mockRetreatRepo) GetByRoomTypeID(roomTypeID string) (*models.Retreat, error) {
	return m.GetByRoomTypeIDFn(roomTypeID)
}
func (m *mockRetreatRepo) GetAll() ([]models.Retreat, error)       { return m.GetAllFn() }
func (m *mockRetreatRepo) GetPublished() ([]models.Retreat, error) { return m.GetPublishedFn() }
func (m *mockRetreatRepo) SetPublished(slug string, published bool) error {
	return m.SetPublishedFn(slug, published)
}

type mockGateway struct {
	CreateCheckoutSessionFn func(ctx context.Context, params SessionParams) (*SessionInfo, error)
	Calls                   []SessionParams
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, params SessionParams) (*SessionInfo, error) {
	m.Calls = append(m.Calls, params)
	if m.CreateCheckoutSessionFn != nil {
		return m.CreateCheckoutSessionFn(ctx, params)
	}
	return &SessionInfo{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

type mockEnqueuer struct {
	Enqueued []models.BookingConfirmationPayload
	Err      error
}

func (m *mockEnqueuer) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.Enqueued = append(m.Enqueued, payload)
	return nil
}

var errBackend = errors.New("backend unavailable")

// testRetreat builds a retreat with one room type (capacity 5, 100 EUR)
// and two extras, the shape most tests want.
func testRetreat() *models.Retreat {
	max2 := 2
	return &models.Retreat{
		ID:    "ret-1",
		Slug:  "sierra-norte",
		Title: "Retiro Sierra Norte",
		RoomTypes: []models.RoomType{
			{ID: "room-1", Name: "Habitación doble", PriceCents: 10000, MaxQuantity: 5},
		},
		ExtraActivities: []models.ExtraActivity{
			{ID: "extra-1", Name: "Masaje", PriceCents: 4500, AllowMultiple: true, MaxQuantity: &max2},
			{ID: "extra-2", Name: "Excursión", PriceCents: 2000, AllowMultiple: false},
		},
	}
}
