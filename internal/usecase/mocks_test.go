package usecase

import (
	"context"
	"sync"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/mailer"
	"service-booking/internal/scheduler"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findAllFn     func(ctx context.Context, limit, offset int) ([]*entity.User, error)
	countAllFn    func(ctx context.Context) (int64, error)
	updateFn      func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}
func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}
func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}
func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockRoleRepo struct {
	createFn            func(ctx context.Context, role *entity.Role) error
	findByNameFn        func(ctx context.Context, name string) (*entity.Role, error)
	findNamesByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]string, error)
	attachFn            func(ctx context.Context, userID, roleID uuid.UUID) error
	detachFn            func(ctx context.Context, userID, roleID uuid.UUID) error
	replaceForUserFn    func(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error
}

func (m *mockRoleRepo) Create(ctx context.Context, role *entity.Role) error {
	if m.createFn != nil {
		return m.createFn(ctx, role)
	}
	return nil
}
func (m *mockRoleRepo) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}
func (m *mockRoleRepo) FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if m.findNamesByUserIDFn != nil {
		return m.findNamesByUserIDFn(ctx, userID)
	}
	return nil, nil
}
func (m *mockRoleRepo) Attach(ctx context.Context, userID, roleID uuid.UUID) error {
	if m.attachFn != nil {
		return m.attachFn(ctx, userID, roleID)
	}
	return nil
}
func (m *mockRoleRepo) Detach(ctx context.Context, userID, roleID uuid.UUID) error {
	if m.detachFn != nil {
		return m.detachFn(ctx, userID, roleID)
	}
	return nil
}
func (m *mockRoleRepo) ReplaceForUser(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	if m.replaceForUserFn != nil {
		return m.replaceForUserFn(ctx, userID, roleIDs)
	}
	return nil
}

type mockCareerTypeRepo struct {
	createFn     func(ctx context.Context, careerType *entity.CareerType) error
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.CareerType, error)
	findByNameFn func(ctx context.Context, name string) (*entity.CareerType, error)
	findAllFn    func(ctx context.Context) ([]*entity.CareerType, error)
	approveFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCareerTypeRepo) Create(ctx context.Context, careerType *entity.CareerType) error {
	if m.createFn != nil {
		return m.createFn(ctx, careerType)
	}
	return nil
}
func (m *mockCareerTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareerType, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockCareerTypeRepo) FindByName(ctx context.Context, name string) (*entity.CareerType, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, nil
}
func (m *mockCareerTypeRepo) FindAll(ctx context.Context) ([]*entity.CareerType, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
func (m *mockCareerTypeRepo) Approve(ctx context.Context, id uuid.UUID) error {
	if m.approveFn != nil {
		return m.approveFn(ctx, id)
	}
	return nil
}

type mockServiceRepo struct {
	createFn   func(ctx context.Context, service *entity.Service) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	findAllFn  func(ctx context.Context, limit, offset int) ([]*entity.Service, error)
	updateFn   func(ctx context.Context, service *entity.Service) error
	deleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if m.createFn != nil {
		return m.createFn(ctx, service)
	}
	return nil
}
func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockServiceRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Service, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}
func (m *mockServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, service)
	}
	return nil
}
func (m *mockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockBookingRepo struct {
	createFn           func(ctx context.Context, booking *entity.Booking) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findByCustomerIDFn func(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)
	updateStatusesFn   func(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error)
	countByServiceIDFn func(ctx context.Context, serviceID uuid.UUID) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockBookingRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	if m.findByCustomerIDFn != nil {
		return m.findByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatuses(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error) {
	if m.updateStatusesFn != nil {
		return m.updateStatusesFn(ctx, id, status, paymentStatus)
	}
	return nil, nil
}
func (m *mockBookingRepo) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	if m.countByServiceIDFn != nil {
		return m.countByServiceIDFn(ctx, serviceID)
	}
	return 0, nil
}

type mockProfileRepo struct {
	createFn       func(ctx context.Context, profile *entity.UserProfile) error
	findByUserIDFn func(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	updateFn       func(ctx context.Context, profile *entity.UserProfile) error
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.UserProfile) error {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}
func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}
func (m *mockProfileRepo) Update(ctx context.Context, profile *entity.UserProfile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, profile)
	}
	return nil
}

type mockActivityLogRepo struct {
	createFn  func(ctx context.Context, entry *entity.ActivityLog) error
	findAllFn func(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error)
}

func (m *mockActivityLogRepo) Create(ctx context.Context, entry *entity.ActivityLog) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}
func (m *mockActivityLogRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

// mockMailer records sent mail; each send also signals sent so tests
// can wait for the fire-and-forget goroutines.
type mockMailer struct {
	mu            sync.Mutex
	verifications []string
	resets        []string
	confirmations []mailer.BookingMail
	sent          chan struct{}
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan struct{}, 16)}
}

func (m *mockMailer) SendVerification(to, tokenString string) error {
	m.mu.Lock()
	m.verifications = append(m.verifications, to)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil
}
func (m *mockMailer) SendPasswordReset(to, tokenString string) error {
	m.mu.Lock()
	m.resets = append(m.resets, to)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil
}
func (m *mockMailer) SendBookingConfirmation(to string, mail mailer.BookingMail) error {
	m.mu.Lock()
	m.confirmations = append(m.confirmations, mail)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return nil
}

func (m *mockMailer) waitSent(timeout time.Duration) bool {
	select {
	case <-m.sent:
		return true
	case <-time.After(timeout):
		return false
	}
}

type mockScheduler struct {
	mu        sync.Mutex
	enqueued  []string
	fireAts   map[string]time.Time
	cancelled []string
}

func newMockScheduler() *mockScheduler {
	return &mockScheduler{fireAts: make(map[string]time.Time)}
}

func (m *mockScheduler) Enqueue(key string, fireAt time.Time, data scheduler.Reminder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enqueued = append(m.enqueued, key)
	m.fireAts[key] = fireAt
}

func (m *mockScheduler) Cancel(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = append(m.cancelled, key)
	return true
}

// newTestRepo assembles a Repository from mocks; pass nil to get a
// default mock that returns zero values.
func newTestRepo(
	users repository.UserRepository,
	roles repository.RoleRepository,
	careerTypes repository.CareerTypeRepository,
	services repository.ServiceRepository,
	bookings repository.BookingRepository,
) *repository.Repository {
	if users == nil {
		users = &mockUserRepo{}
	}
	if roles == nil {
		roles = &mockRoleRepo{}
	}
	if careerTypes == nil {
		careerTypes = &mockCareerTypeRepo{}
	}
	if services == nil {
		services = &mockServiceRepo{}
	}
	if bookings == nil {
		bookings = &mockBookingRepo{}
	}
	return &repository.Repository{
		User:        users,
		Role:        roles,
		CareerType:  careerTypes,
		Service:     services,
		Booking:     bookings,
		UserProfile: &mockProfileRepo{},
		ActivityLog: &mockActivityLogRepo{},
	}
}
