package blueprint

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a blueprint catalog
type catalogFile struct {
	Ships   map[string]shipEntry   `yaml:"ships"`
	Drones  map[string]string      `yaml:"drones"`
	Layouts map[string]layoutEntry `yaml:"layouts"`
}

type shipEntry struct {
	Layout  string           `yaml:"layout"`
	Systems map[string][]int `yaml:"systems"`
}

type layoutEntry struct {
	File  string `yaml:"file"`
	Rooms []Room `yaml:"rooms"`
	Doors []Door `yaml:"doors"`
}

// Catalog is an in-memory Lookup, usually loaded from a YAML file
type Catalog struct {
	mu      sync.RWMutex
	ships   map[string]*ShipBlueprint
	layouts map[string]*ShipLayout
	drones  map[string]*DroneBlueprint
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		ships:   make(map[string]*ShipBlueprint),
		layouts: make(map[string]*ShipLayout),
		drones:  make(map[string]*DroneBlueprint),
	}
}

// LoadCatalog loads a catalog from a YAML file. Layout files referenced by
// the catalog are resolved relative to the catalog's directory.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := NewCatalog()
	baseDir := filepath.Dir(path)

	for id, entry := range file.Layouts {
		var layout *ShipLayout
		if entry.File != "" {
			layout, err = loadLayoutFile(id, filepath.Join(baseDir, entry.File))
			if err != nil {
				return nil, err
			}
		} else {
			layout = &ShipLayout{ID: id, Rooms: entry.Rooms, Doors: entry.Doors}
			if err := validateLayout(layout); err != nil {
				return nil, err
			}
		}
		c.AddLayout(layout)
	}

	for id, entry := range file.Ships {
		if _, ok := c.layouts[entry.Layout]; !ok {
			return nil, fmt.Errorf("ship %s references unknown layout %q", id, entry.Layout)
		}
		c.AddShip(&ShipBlueprint{ID: id, LayoutID: entry.Layout, SystemRooms: entry.Systems})
	}

	for id, droneType := range file.Drones {
		c.AddDrone(&DroneBlueprint{ID: id, Type: droneType})
	}

	return c, nil
}

func loadLayoutFile(id, path string) (*ShipLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout %s: %w", id, err)
	}
	defer f.Close()
	return ParseLayout(id, f)
}

// AddShip registers a ship blueprint
func (c *Catalog) AddShip(b *ShipBlueprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ships[b.ID] = b
}

// AddLayout registers a layout
func (c *Catalog) AddLayout(l *ShipLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sortRooms(l.Rooms)
	c.layouts[l.ID] = l
}

// AddDrone registers a drone blueprint
func (c *Catalog) AddDrone(b *DroneBlueprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drones[b.ID] = b
}

// Ship implements Lookup
func (c *Catalog) Ship(id string) (*ShipBlueprint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b, ok := c.ships[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("ship %q: %w", id, ErrNotFound)
}

// Layout implements Lookup
func (c *Catalog) Layout(id string) (*ShipLayout, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if l, ok := c.layouts[id]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("layout %q: %w", id, ErrNotFound)
}

// Drone implements Lookup
func (c *Catalog) Drone(id string) (*DroneBlueprint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b, ok := c.drones[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("drone %q: %w", id, ErrNotFound)
}

// Stats returns the number of ships, layouts and drones in the catalog
func (c *Catalog) Stats() (ships, layouts, drones int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ships), len(c.layouts), len(c.drones)
}
