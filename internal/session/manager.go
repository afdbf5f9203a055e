package session

import (
	"sync"

	"github.com/Freeeeeet/eduschedule/internal/flow"
	"github.com/Freeeeeet/eduschedule/internal/model"
	"github.com/google/uuid"
)

// Session хранит состояние одной авторизованной сессии.
// Процессы создаются по роли: студент получает процесс записи,
// преподаватель — редактор доступности.
type Session struct {
	Token string
	User  model.User

	Booking  *flow.Booking            // только для роли student
	Schedule *flow.AvailabilityEditor // только для роли teacher

	mu            sync.Mutex
	notifications []model.Notification
}

// Notify добавляет уведомление в очередь сессии
func (s *Session) Notify(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)
}

// Notifications возвращает копию очереди уведомлений
func (s *Session) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// DrainNotifications возвращает накопленные уведомления и очищает очередь
func (s *Session) DrainNotifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notifications
	s.notifications = nil
	return out
}

// Manager управляет активными сессиями
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session // token -> Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create создаёт сессию для пользователя и выдаёт токен.
// Состояние процессов инициализируется по роли пользователя.
func (m *Manager) Create(user model.User) *Session {
	sess := &Session{
		Token: uuid.NewString(),
		User:  user,
	}

	switch user.Role {
	case model.RoleStudent:
		sess.Booking = flow.NewBooking()
	case model.RoleTeacher:
		sess.Schedule = flow.NewAvailabilityEditor()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.Token] = sess
	return sess
}

// Get возвращает сессию по токену, nil если сессии нет
func (m *Manager) Get(token string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sessions[token]
}

// Delete удаляет сессию вместе со всем её состоянием
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}
