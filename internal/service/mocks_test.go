package service

import (
	"context"
	"sync"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/cache"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockMedicineRepo struct {
	m         sync.RWMutex
	medicines map[string]*domain.Medicine
	err       error
}

func newMockMedicineRepo() *mockMedicineRepo {
	return &mockMedicineRepo{medicines: make(map[string]*domain.Medicine)}
}

func (m *mockMedicineRepo) Create(_ context.Context, med *domain.Medicine) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.medicines[med.Name]; ok {
		return repository.ErrDuplicateMedicine
	}
	cp := *med
	m.medicines[med.Name] = &cp
	return nil
}

func (m *mockMedicineRepo) GetByName(_ context.Context, name string) (*domain.Medicine, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	med, ok := m.medicines[name]
	if !ok {
		return nil, repository.ErrMedicineNotFound
	}
	cp := *med
	return &cp, nil
}

func (m *mockMedicineRepo) List(context.Context) ([]domain.Medicine, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var meds []domain.Medicine
	for _, med := range m.medicines {
		meds = append(meds, *med)
	}
	return meds, m.err
}

func (m *mockMedicineRepo) ListBySeller(_ context.Context, sellerEmail string) ([]domain.Medicine, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var meds []domain.Medicine
	for _, med := range m.medicines {
		if med.SellerEmail == sellerEmail {
			meds = append(meds, *med)
		}
	}
	return meds, m.err
}

func (m *mockMedicineRepo) Update(_ context.Context, name, sellerEmail string, upd domain.MedicineUpdate) error {
	m.m.Lock()
	defer m.m.Unlock()
	med, ok := m.medicines[name]
	if !ok || med.SellerEmail != sellerEmail {
		return repository.ErrMedicineNotFound
	}
	med.Price = upd.Price
	med.DiscountPercentage = upd.DiscountPercentage
	return nil
}

func (m *mockMedicineRepo) SetPromotionFlag(_ context.Context, name string, flag domain.PromotionFlag) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	med, ok := m.medicines[name]
	if !ok {
		return repository.ErrMedicineNotFound
	}
	med.Flag = flag
	return nil
}

func (m *mockMedicineRepo) Delete(_ context.Context, name, sellerEmail string) error {
	m.m.Lock()
	defer m.m.Unlock()
	med, ok := m.medicines[name]
	if !ok || med.SellerEmail != sellerEmail {
		return repository.ErrMedicineNotFound
	}
	delete(m.medicines, name)
	return nil
}

type cartLineKey struct {
	itemName   string
	buyerEmail string
}

type mockCartRepo struct {
	m     sync.RWMutex
	items map[cartLineKey]*domain.CartItem
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[cartLineKey]*domain.CartItem)}
}

func (m *mockCartRepo) AddItem(_ context.Context, item *domain.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	key := cartLineKey{item.ItemName, item.BuyerEmail}
	if _, ok := m.items[key]; ok {
		return repository.ErrDuplicateCartItem
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	cp := *item
	m.items[key] = &cp
	return nil
}

func (m *mockCartRepo) GetItem(_ context.Context, itemName, buyerEmail string) (*domain.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	item, ok := m.items[cartLineKey{itemName, buyerEmail}]
	if !ok {
		return nil, repository.ErrCartItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockCartRepo) ListByBuyer(_ context.Context, buyerEmail string) ([]domain.CartItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var items []domain.CartItem
	for _, item := range m.items {
		if item.BuyerEmail == buyerEmail {
			items = append(items, *item)
		}
	}
	return items, m.err
}

func (m *mockCartRepo) AdjustItem(_ context.Context, itemName, buyerEmail string, quantityDelta int, priceDelta float64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	item, ok := m.items[cartLineKey{itemName, buyerEmail}]
	if !ok {
		return repository.ErrCartItemNotFound
	}
	item.Quantity += quantityDelta
	item.Price += priceDelta
	return nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	for key, item := range m.items {
		if item.ID == id {
			delete(m.items, key)
			return nil
		}
	}
	return repository.ErrCartItemNotFound
}

func (m *mockCartRepo) ClearForBuyer(_ context.Context, buyerEmail string) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var deleted int64
	for key, item := range m.items {
		if item.BuyerEmail == buyerEmail {
			delete(m.items, key)
			deleted++
		}
	}
	return deleted, nil
}

type mockPromotionRepo struct {
	m      sync.RWMutex
	ads    map[string]*domain.Advertisement
	slider map[string]*domain.SliderItem
	err    error
}

func newMockPromotionRepo() *mockPromotionRepo {
	return &mockPromotionRepo{
		ads:    make(map[string]*domain.Advertisement),
		slider: make(map[string]*domain.SliderItem),
	}
}

func (m *mockPromotionRepo) CreateAdvertisement(_ context.Context, ad *domain.Advertisement) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.ads[ad.ItemName]; ok {
		return repository.ErrDuplicateAd
	}
	cp := *ad
	m.ads[ad.ItemName] = &cp
	return nil
}

func (m *mockPromotionRepo) ListAdvertisements(context.Context) ([]domain.Advertisement, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var ads []domain.Advertisement
	for _, ad := range m.ads {
		ads = append(ads, *ad)
	}
	return ads, m.err
}

func (m *mockPromotionRepo) ListAdvertisementsBySeller(_ context.Context, sellerEmail string) ([]domain.Advertisement, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var ads []domain.Advertisement
	for _, ad := range m.ads {
		if ad.SellerEmail == sellerEmail {
			ads = append(ads, *ad)
		}
	}
	return ads, m.err
}

func (m *mockPromotionRepo) SetAdvertisementFlag(_ context.Context, itemName string, flag domain.PromotionFlag) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	ad, ok := m.ads[itemName]
	if !ok {
		return repository.ErrAdvertisementNotFound
	}
	ad.Flag = flag
	return nil
}

func (m *mockPromotionRepo) GetSliderItem(_ context.Context, itemName string) (*domain.SliderItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	item, ok := m.slider[itemName]
	if !ok {
		return nil, repository.ErrSliderItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *mockPromotionRepo) ListSlider(context.Context) ([]domain.SliderItem, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var items []domain.SliderItem
	for _, item := range m.slider {
		items = append(items, *item)
	}
	return items, m.err
}

func (m *mockPromotionRepo) InsertSliderItem(_ context.Context, s *domain.SliderItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.slider[s.ItemName]; ok {
		return repository.ErrDuplicateAd
	}
	cp := *s
	m.slider[s.ItemName] = &cp
	return nil
}

func (m *mockPromotionRepo) DeleteSliderItem(_ context.Context, itemName string) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.slider[itemName]; !ok {
		return 0, nil
	}
	delete(m.slider, itemName)
	return 1, nil
}

type mockPaymentRepo struct {
	m        sync.RWMutex
	payments map[string]*domain.Payment
	err      error
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (m *mockPaymentRepo) Insert(_ context.Context, p *domain.Payment) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.payments[p.TransactionID]; ok {
		return repository.ErrDuplicatePayment
	}
	cp := *p
	m.payments[p.TransactionID] = &cp
	return nil
}

func (m *mockPaymentRepo) GetByTransactionID(_ context.Context, transactionID string) (*domain.Payment, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	p, ok := m.payments[transactionID]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPaymentRepo) ListByBuyer(_ context.Context, buyerEmail string) ([]domain.Payment, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var payments []domain.Payment
	for _, p := range m.payments {
		if p.BuyerEmail == buyerEmail {
			payments = append(payments, *p)
		}
	}
	return payments, m.err
}

func (m *mockPaymentRepo) ListBySeller(_ context.Context, sellerEmail string) ([]domain.Payment, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	var payments []domain.Payment
	for _, p := range m.payments {
		if p.SellerEmail == sellerEmail {
			payments = append(payments, *p)
		}
	}
	return payments, m.err
}

func (m *mockPaymentRepo) UpdateStatus(_ context.Context, transactionID string, status domain.PaymentStatus) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	p, ok := m.payments[transactionID]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	p.Status = status
	return nil
}

func (m *mockPaymentRepo) SummarizeSeller(_ context.Context, sellerEmail string) (*domain.SalesSummary, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	summary := &domain.SalesSummary{}
	for _, p := range m.payments {
		if p.SellerEmail != sellerEmail {
			continue
		}
		sumInto(summary, p)
	}
	return summary, m.err
}

func (m *mockPaymentRepo) SummarizeAll(context.Context) (*domain.SalesSummary, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	summary := &domain.SalesSummary{}
	for _, p := range m.payments {
		sumInto(summary, p)
	}
	return summary, m.err
}

func sumInto(summary *domain.SalesSummary, p *domain.Payment) {
	summary.TotalAmount += p.Amount
	switch p.Status {
	case domain.StatusPaid:
		summary.PaidAmount += p.Amount
	case domain.StatusPending:
		summary.PendingAmount += p.Amount
	}
}

// mockCache misses on every read and counts invalidations.
type mockCache struct {
	m           sync.Mutex
	cartDeletes map[string]int
	sliderDels  int
	catalogDels int
	err         error
}

func newMockCache() *mockCache {
	return &mockCache{cartDeletes: make(map[string]int)}
}

func (m *mockCache) GetCart(context.Context, string) ([]domain.CartItem, error) {
	return nil, cache.ErrCacheMiss
}

func (m *mockCache) SetCart(context.Context, string, []domain.CartItem) error { return m.err }

func (m *mockCache) DeleteCart(_ context.Context, buyerEmail string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cartDeletes[buyerEmail]++
	return m.err
}

func (m *mockCache) GetSlider(context.Context) ([]domain.SliderItem, error) {
	return nil, cache.ErrCacheMiss
}

func (m *mockCache) SetSlider(context.Context, []domain.SliderItem) error { return m.err }

func (m *mockCache) DeleteSlider(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.sliderDels++
	return m.err
}

func (m *mockCache) GetCatalog(context.Context) ([]domain.Medicine, error) {
	return nil, cache.ErrCacheMiss
}

func (m *mockCache) SetCatalog(context.Context, []domain.Medicine) error { return m.err }

func (m *mockCache) DeleteCatalog(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.catalogDels++
	return m.err
}
