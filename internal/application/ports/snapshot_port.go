package ports

import "errors"

// ErrNoSnapshot indica que nunca se guardó un snapshot para esa colección.
var ErrNoSnapshot = errors.New("snapshot no disponible")

// Nombres de colección usados en los snapshots locales.
const (
	SnapshotProduction = "production"
	SnapshotSales      = "sales"
	SnapshotClients    = "clients"
	SnapshotExpenses   = "expenses"
)

// SnapshotStore guarda el último listado bueno de cada colección para servir
// lecturas degradadas cuando la base de datos no responde.
type SnapshotStore interface {
	Save(collection string, v any) error
	// Load deserializa el último snapshot en out. ErrNoSnapshot si no existe.
	Load(collection string, out any) error
}
