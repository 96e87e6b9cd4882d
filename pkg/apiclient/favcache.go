package apiclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// favCacheFile é a chave fixa do cache local de favoritos, o único estado
// durável do cliente além do token.
const favCacheFile = "favoritos.json"

// FavoriteCache guarda em disco os IDs de quizzes favoritados, para a UI
// marcar o coração sem esperar o servidor.
type FavoriteCache struct {
	dir string

	mu  sync.Mutex
	ids map[uint]bool
}

func NewFavoriteCache(dir string) (*FavoriteCache, error) {
	c := &FavoriteCache{
		dir: dir,
		ids: make(map[uint]bool),
	}

	data, err := os.ReadFile(c.path())
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		// Cache corrompido não é fatal; recomeça vazio.
		return c, nil
	}
	for _, id := range ids {
		c.ids[id] = true
	}
	return c, nil
}

func (c *FavoriteCache) path() string {
	return filepath.Join(c.dir, favCacheFile)
}

func (c *FavoriteCache) Has(quizID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ids[quizID]
}

func (c *FavoriteCache) Add(quizID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[quizID] = true
	return c.save()
}

func (c *FavoriteCache) Remove(quizID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.ids, quizID)
	return c.save()
}

// Replace sobrescreve o cache com a lista vinda do servidor.
func (c *FavoriteCache) Replace(ids []uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = make(map[uint]bool, len(ids))
	for _, id := range ids {
		c.ids[id] = true
	}
	return c.save()
}

func (c *FavoriteCache) List() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]uint, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c *FavoriteCache) save() error {
	ids := make([]uint, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(c.path(), data, 0644)
}
