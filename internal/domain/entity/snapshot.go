package entity

// Snapshot agrupa las cuatro colecciones; es lo que se intercambia con la persistencia.
type Snapshot struct {
	Users      []User
	Categories []Category
	Items      []Item
	Movements  []StockMovement
}

// Empty indica si no hay datos en ninguna colección.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Users) == 0 && len(s.Categories) == 0 && len(s.Items) == 0 && len(s.Movements) == 0)
}

// Changeset marca qué colecciones modificó una mutación.
type Changeset struct {
	Users      bool
	Categories bool
	Items      bool
	Movements  bool
}

// Any indica si alguna colección cambió.
func (c Changeset) Any() bool {
	return c.Users || c.Categories || c.Items || c.Movements
}

// AllCollections marca las cuatro colecciones (siembra y restauración completa).
func AllCollections() Changeset {
	return Changeset{Users: true, Categories: true, Items: true, Movements: true}
}
