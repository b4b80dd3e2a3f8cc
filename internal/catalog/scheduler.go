package catalog

import (
	"context"
	"sync"

	"github.com/roylee0704/gron"

	"globalpass/internal/catalog/interfaces"
	"globalpass/internal/providers"
	"globalpass/internal/structures"
)

// Scheduler drives the out-of-band catalog cadence: periodic re-fetch of the
// feed plus snapshot persistence after every successful refresh.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	provider    ProviderInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Catalog.RefreshInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Infof(providers.TypeApp, "Refreshing catalog from %s", s.config.Catalog.URL)
		if err := s.provider.Refresh(context.Background()); err != nil {
			s.logger.Errorf(providers.TypeApp, "Catalog refresh error: %s", err)
			return
		}

		if err := s.fileManager.SaveToFile(s.config.Catalog.SnapshotPath); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting catalog snapshot: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted catalog snapshot to %s", s.config.Catalog.SnapshotPath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Catalog.SnapshotPath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting catalog snapshot to file...")
	err := s.fileManager.SaveToFile(s.config.Catalog.SnapshotPath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting catalog snapshot: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, provider ProviderInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		provider:    provider,
		fileManager: fileManager,
	}
}
