package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Rakhulsr/figurine-shop/app/models"
	"github.com/Rakhulsr/figurine-shop/app/repositories"
	"github.com/Rakhulsr/figurine-shop/app/state"
	"github.com/Rakhulsr/figurine-shop/app/storage"
)

type SyncMode string

const (
	SyncModeIdle   SyncMode = "idle"
	SyncModeRemote SyncMode = "remote"
	SyncModeLocal  SyncMode = "local"
)

// SyncService fills the state store at startup, either from live remote subscriptions or,
// when the remote store is unreachable, from local storage.
type SyncService struct {
	store        state.Dispatcher
	local        storage.LocalStore
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	messageRepo  repositories.MessageRepositoryImpl

	probeTimeout time.Duration

	mu           sync.Mutex
	started      bool
	mode         SyncMode
	unsubscribes []func()
}

func NewSyncService(
	store state.Dispatcher,
	local storage.LocalStore,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	messageRepo repositories.MessageRepositoryImpl,
) *SyncService {
	return &SyncService{
		store:        store,
		local:        local,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		messageRepo:  messageRepo,
		mode:         SyncModeIdle,
	}
}

// WithProbeTimeout bounds the connectivity probe run by Start.
func (s *SyncService) WithProbeTimeout(d time.Duration) *SyncService {
	s.probeTimeout = d
	return s
}

func (s *SyncService) probe(ctx context.Context) error {
	if s.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.probeTimeout)
		defer cancel()
	}
	return s.productRepo.Probe(ctx)
}

func (s *SyncService) Mode() SyncMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Start runs once per process. ctx bounds the lifetime of the live subscriptions.
func (s *SyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	s.loadDeviceCollections()

	if err := s.probe(ctx); err != nil {
		log.Printf("SyncService.Start: remote store unreachable, using local data: %v", err)
		s.loadCatalogFromLocal()
		s.mode = SyncModeLocal
		return nil
	}

	if err := s.attach(ctx); err != nil {
		log.Printf("SyncService.Start: failed to attach live listeners, using local data: %v", err)
		s.releaseLocked()
		s.loadCatalogFromLocal()
		s.mode = SyncModeLocal
		return nil
	}

	s.mode = SyncModeRemote
	log.Println("SyncService.Start: live subscriptions attached")
	return nil
}

func (s *SyncService) attach(ctx context.Context) error {
	unsub, err := s.productRepo.Subscribe(ctx, func(products []models.Product) {
		s.store.Dispatch(state.SetProducts{Products: products})
		s.cache(storage.KeyProducts, products)
	})
	if err != nil {
		return err
	}
	s.unsubscribes = append(s.unsubscribes, unsub)

	unsub, err = s.categoryRepo.Subscribe(ctx, func(categories []models.Category) {
		s.store.Dispatch(state.SetCategories{Categories: categories})
		s.cache(storage.KeyCategories, categories)
	})
	if err != nil {
		return err
	}
	s.unsubscribes = append(s.unsubscribes, unsub)

	unsub, err = s.messageRepo.Subscribe(ctx, func(messages []models.Message) {
		s.store.Dispatch(state.SetMessages{Messages: messages})
		s.cache(storage.KeyMessages, messages)
	})
	if err != nil {
		return err
	}
	s.unsubscribes = append(s.unsubscribes, unsub)
	return nil
}

func (s *SyncService) cache(key string, value interface{}) {
	if err := s.local.Save(key, value); err != nil {
		log.Printf("SyncService.cache: failed to cache %s locally: %v", key, err)
	}
}

// loadDeviceCollections loads what only ever lives on this device. Carts are per browser and
// are loaded by CartService when a device first shows up.
func (s *SyncService) loadDeviceCollections() {
	s.store.Dispatch(state.SetCustomOrders{CustomOrders: loadLocal[models.CustomOrder](s.local, storage.KeyCustomOrders)})
	s.store.Dispatch(state.SetCharges{Charges: loadLocal[models.Charge](s.local, storage.KeyCharges)})
	s.store.Dispatch(state.SetInvestments{Investments: loadLocal[models.Investment](s.local, storage.KeyInvestments)})
	s.store.Dispatch(state.SetRevenues{Revenues: loadLocal[models.Revenue](s.local, storage.KeyRevenues)})
}

func (s *SyncService) loadCatalogFromLocal() {
	s.store.Dispatch(state.SetProducts{Products: loadLocal[models.Product](s.local, storage.KeyProducts)})
	s.store.Dispatch(state.SetCategories{Categories: loadLocal[models.Category](s.local, storage.KeyCategories)})
	s.store.Dispatch(state.SetMessages{Messages: loadLocal[models.Message](s.local, storage.KeyMessages)})
}

// Close releases every live subscription acquired by Start.
func (s *SyncService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

func (s *SyncService) releaseLocked() {
	for _, unsub := range s.unsubscribes {
		unsub()
	}
	s.unsubscribes = nil
}

func loadLocal[T any](local storage.LocalStore, key string) []T {
	var items []T
	found, err := local.Load(key, &items)
	if err != nil {
		log.Printf("loadLocal: unreadable local data for %s, starting empty: %v", key, err)
		return []T{}
	}
	if !found || items == nil {
		return []T{}
	}
	return items
}
