package scheduler

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	DefaultPublishInterval = time.Minute
	DefaultStatsInterval   = 5 * time.Minute
)

// Publisher promotes due scheduled content
type Publisher interface {
	PromoteDue() (posts int64, resources int64, err error)
}

// Manager runs the background publish sweep and the statistics refresh
type Manager struct {
	publisher       Publisher
	refreshStats    func() error
	publishInterval time.Duration
	statsInterval   time.Duration
	publishTicker   *time.Ticker
	statsTicker     *time.Ticker
	stopCh          chan struct{}
	wg              sync.WaitGroup
	mu              sync.Mutex
	running         bool
}

var (
	globalManager *Manager
	managerMu     sync.Mutex
)

// NewManager creates a manager; zero intervals fall back to the defaults
func NewManager(publisher Publisher, refreshStats func() error, publishInterval, statsInterval time.Duration) *Manager {
	if publishInterval <= 0 {
		publishInterval = DefaultPublishInterval
	}
	if statsInterval <= 0 {
		statsInterval = DefaultStatsInterval
	}
	return &Manager{
		publisher:       publisher,
		refreshStats:    refreshStats,
		publishInterval: publishInterval,
		statsInterval:   statsInterval,
	}
}

// InitializeManager installs the global manager
func InitializeManager(m *Manager) {
	managerMu.Lock()
	defer managerMu.Unlock()
	globalManager = m
}

// GetManager returns the global manager or nil
func GetManager() *Manager {
	managerMu.Lock()
	defer managerMu.Unlock()
	return globalManager
}

// Start starts the background workers. Calling Start twice is a no-op.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// a fresh stop channel per start cycle lets the manager be restarted
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[Scheduler] Starting background tasks")

	m.publishTicker = time.NewTicker(m.publishInterval)
	m.wg.Add(1)
	go m.publishWorker(m.stopCh, m.publishTicker)

	if m.refreshStats != nil {
		m.statsTicker = time.NewTicker(m.statsInterval)
		m.wg.Add(1)
		go m.statsWorker(m.stopCh, m.statsTicker)
	}

	log.Infof("[Scheduler] Started (publish sweep every %s, statistics every %s)", m.publishInterval, m.statsInterval)
}

// Stop stops the background workers and waits for them to exit
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[Scheduler] Stopping background tasks...")

	if m.publishTicker != nil {
		m.publishTicker.Stop()
	}
	if m.statsTicker != nil {
		m.statsTicker.Stop()
	}

	close(m.stopCh)
	m.stopCh = nil
	m.running = false

	m.wg.Wait()
	log.Info("[Scheduler] Stopped successfully")
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// RunPublishOnce performs a single publish sweep
func (m *Manager) RunPublishOnce() {
	posts, resources, err := m.publisher.PromoteDue()
	if err != nil {
		log.Errorf("[Scheduler] Publish sweep failed: %v", err)
		return
	}
	if posts > 0 || resources > 0 {
		log.Infof("[Scheduler] Published %d scheduled posts and %d scheduled resources", posts, resources)
		if m.refreshStats != nil {
			if err := m.refreshStats(); err != nil {
				log.Errorf("[Scheduler] Statistics refresh failed: %v", err)
			}
		}
	}
}

func (m *Manager) publishWorker(stopCh <-chan struct{}, ticker *time.Ticker) {
	defer m.wg.Done()

	// catch up on anything that came due while the process was down
	m.RunPublishOnce()

	for {
		select {
		case <-stopCh:
			log.Info("[Scheduler] Publish worker stopping")
			return
		case <-ticker.C:
			m.RunPublishOnce()
		}
	}
}

func (m *Manager) statsWorker(stopCh <-chan struct{}, ticker *time.Ticker) {
	defer m.wg.Done()
	for {
		select {
		case <-stopCh:
			log.Info("[Scheduler] Statistics worker stopping")
			return
		case <-ticker.C:
			if err := m.refreshStats(); err != nil {
				log.Errorf("[Scheduler] Statistics refresh failed: %v", err)
			}
		}
	}
}
