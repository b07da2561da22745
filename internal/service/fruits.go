package service

import (
	"context"
	"log"
	"slices"
	"sync"

	"github.com/jask/fruitlist/internal/database/repository"
	"github.com/jask/fruitlist/internal/observable"
)

// FruitSource lists the fruit catalog.
type FruitSource interface {
	List(ctx context.Context) ([]repository.Fruit, error)
}

// FavoriteStore persists favorited fruit ids.
type FavoriteStore interface {
	Add(ctx context.Context, fruitID int) error
	Remove(ctx context.Context, fruitID int) error
	ListFruitIDs(ctx context.Context) ([]int, error)
}

// FruitListOptions tunes filtering and the initial ordering.
type FruitListOptions struct {
	Matcher     NameMatcher
	InitialSort NutritionSortType
}

// FruitListViewModel owns the fruit list state shown by the list screen.
// Commands are fire-and-forget: failures are logged and the published
// values stay as they were.
type FruitListViewModel struct {
	ctx       context.Context
	source    FruitSource
	store     FavoriteStore
	matcher   NameMatcher
	fruits    *observable.Value[[]repository.Fruit]
	favorites *observable.Value[[]int]

	mu       sync.Mutex
	catalog  []repository.Fruit
	query    string
	sortType NutritionSortType
}

func NewFruitListViewModel(ctx context.Context, source FruitSource, store FavoriteStore, opts FruitListOptions) *FruitListViewModel {
	fruits := observable.NewValue([]repository.Fruit{})
	fruits.SetEqualFunc(func(a, b []repository.Fruit) bool { return slices.Equal(a, b) })
	favorites := observable.NewValue([]int{})
	favorites.SetEqualFunc(func(a, b []int) bool { return slices.Equal(a, b) })
	return &FruitListViewModel{
		ctx:       ctx,
		source:    source,
		store:     store,
		matcher:   opts.Matcher,
		sortType:  opts.InitialSort,
		fruits:    fruits,
		favorites: favorites,
	}
}

// Fruits is the currently visible, filtered and sorted list.
func (vm *FruitListViewModel) Fruits() observable.Readable[[]repository.Fruit] { return vm.fruits }

// FavoriteFruitIDs is the set of favorited fruit ids in insertion order.
func (vm *FruitListViewModel) FavoriteFruitIDs() observable.Readable[[]int] { return vm.favorites }

// Initialize loads the catalog and favorites and publishes both.
// Calling it again reloads from the store.
func (vm *FruitListViewModel) Initialize() {
	catalog, err := vm.source.List(vm.ctx)
	if err != nil {
		log.Printf("fruitlist: load catalog: %v", err)
		return
	}
	vm.mu.Lock()
	vm.catalog = catalog
	vm.publishLocked()
	vm.mu.Unlock()

	vm.reloadFavorites()
}

// FilterByName narrows the visible list to names matching query.
func (vm *FruitListViewModel) FilterByName(query string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.query = query
	vm.publishLocked()
}

// SortByNutrition orders the visible list by the chosen nutrition field.
func (vm *FruitListViewModel) SortByNutrition(t NutritionSortType) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.sortType = t
	vm.publishLocked()
}

// AddToFavorite marks the fruit as favorite.
func (vm *FruitListViewModel) AddToFavorite(id int) {
	if err := vm.store.Add(vm.ctx, id); err != nil {
		log.Printf("fruitlist: add favorite: %v", err)
		return
	}
	vm.reloadFavorites()
}

// RemoveFromFavorite clears the favorite mark of a fruit.
func (vm *FruitListViewModel) RemoveFromFavorite(id int) {
	if err := vm.store.Remove(vm.ctx, id); err != nil {
		log.Printf("fruitlist: remove favorite: %v", err)
		return
	}
	vm.reloadFavorites()
}

// Query returns the active name filter.
func (vm *FruitListViewModel) Query() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.query
}

// SortType returns the active sort criterion.
func (vm *FruitListViewModel) SortType() NutritionSortType {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.sortType
}

func (vm *FruitListViewModel) reloadFavorites() {
	ids, err := vm.store.ListFruitIDs(vm.ctx)
	if err != nil {
		log.Printf("fruitlist: load favorites: %v", err)
		return
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.favorites.Set(ids)
}

// publishLocked recomputes the visible list. Subscribers run under vm.mu
// and must not call back into the view-model.
func (vm *FruitListViewModel) publishLocked() {
	visible := vm.matcher.filter(vm.catalog, vm.query)
	sortFruits(visible, vm.sortType)
	vm.fruits.Set(visible)
}
