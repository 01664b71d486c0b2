package load

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"sync"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"
	"github.com/go-openapi/inflect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver describes a database that can be introspected.
type Driver struct {
	// Name of the dialect.
	Name string
	// DriverName is the registered database/sql driver name.
	DriverName string
	// Open returns the atlas driver used for inspection.
	Open func(schema.ExecQuerier) (migrate.Driver, error)
}

// drivers holds the supported database drivers.
var drivers = []*Driver{
	{Name: "sqlite", DriverName: "sqlite", Open: sqlite.Open},
	{Name: "postgres", DriverName: "postgres", Open: postgres.Open},
	{Name: "mysql", DriverName: "mysql", Open: mysql.Open},
}

// Drivers returns the names of the supported database drivers.
func Drivers() []string {
	names := make([]string, 0, len(drivers))
	for _, d := range drivers {
		names = append(names, d.Name)
	}
	return names
}

// NewDriver returns the driver with the given name. It fails if the
// provided name is not a valid option.
func NewDriver(name string) (*Driver, error) {
	for _, d := range drivers {
		if name == d.Name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("load: invalid database driver %q (supported: %s)", name, strings.Join(Drivers(), ", "))
}

// ignoredTables are framework bookkeeping tables that never map to models.
var ignoredTables = []string{
	"ar_internal_metadata",
	"atlas_schema_revisions",
	"schema_migrations",
}

// Inspector inspects a database schema. It is implemented by atlas drivers.
type Inspector interface {
	InspectSchema(ctx context.Context, name string, opts *schema.InspectOptions) (*schema.Schema, error)
}

// SQLProvider serves the models of a live database. Tables become models,
// foreign keys become belongs_to associations on the referencing table and
// has_many (or has_one, when the key is unique) associations on the
// referenced table. A pair of `x_id` and `x_type` columns without a foreign
// key becomes a polymorphic association.
type SQLProvider struct {
	inspector Inspector
	schema    string
	db        *sql.DB

	mu     sync.Mutex
	static *Static
}

// Open connects to the database and returns a provider for the named
// schema (empty for the connection's default schema).
func Open(ctx context.Context, driver, dsn, schemaName string) (*SQLProvider, error) {
	d, err := NewDriver(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("load: open %s: %w", d.Name, err)
	}
	p, err := OpenDB(ctx, db, d.Name, schemaName)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}

// OpenDB returns a provider for an already opened database handle.
// The provider takes ownership of db.
func OpenDB(ctx context.Context, db *sql.DB, driver, schemaName string) (*SQLProvider, error) {
	d, err := NewDriver(driver)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("load: ping %s: %w", d.Name, err)
	}
	drv, err := d.Open(db)
	if err != nil {
		return nil, fmt.Errorf("load: open %s inspector: %w", d.Name, err)
	}
	return &SQLProvider{inspector: drv, schema: schemaName, db: db}, nil
}

// NewSQLProvider returns a provider backed by the given inspector.
func NewSQLProvider(i Inspector, schemaName string) *SQLProvider {
	return &SQLProvider{inspector: i, schema: schemaName}
}

// Load implements Provider.
func (p *SQLProvider) Load(ctx context.Context, name string) (*Schema, error) {
	st, err := p.inspect(ctx)
	if err != nil {
		return nil, err
	}
	return st.Load(ctx, name)
}

// Models implements Provider.
func (p *SQLProvider) Models(ctx context.Context) ([]string, error) {
	st, err := p.inspect(ctx)
	if err != nil {
		return nil, err
	}
	return st.Models(ctx)
}

// Refresh drops the inspected schema. The next lookup inspects the database again.
func (p *SQLProvider) Refresh() {
	p.mu.Lock()
	p.static = nil
	p.mu.Unlock()
}

// Close closes the underlying database handle, if the provider owns one.
func (p *SQLProvider) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *SQLProvider) inspect(ctx context.Context) (*Static, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.static != nil {
		return p.static, nil
	}
	s, err := p.inspector.InspectSchema(ctx, p.schema, &schema.InspectOptions{})
	if err != nil {
		return nil, fmt.Errorf("load: inspect schema %q: %w", p.schema, err)
	}
	st, err := NewStatic(ConvertTables(s.Tables)...)
	if err != nil {
		return nil, err
	}
	p.static = st
	return st, nil
}

// ConvertTables converts inspected tables into schemas.
func ConvertTables(tables []*schema.Table) []*Schema {
	tables = slices.DeleteFunc(slices.Clone(tables), func(t *schema.Table) bool {
		return slices.Contains(ignoredTables, t.Name)
	})
	schemas := make([]*Schema, 0, len(tables))
	for _, t := range tables {
		s := &Schema{Name: Classify(t.Name), Table: t.Name}
		fks := foreignKeys(t)
		for _, c := range t.Columns {
			col := &Column{Name: c.Name, Type: columnType(c.Type)}
			if e, ok := c.Type.Type.(*schema.EnumType); ok {
				col.Enum = slices.Clone(e.Values)
			}
			s.Columns = append(s.Columns, col)
			base, ok := strings.CutSuffix(c.Name, "_id")
			if !ok || base == "" {
				continue
			}
			switch fk, hasFK := fks[c.Name]; {
			case hasFK && fk.RefTable != nil:
				s.Associations = append(s.Associations, &Association{Name: base, Macro: BelongsTo, ClassName: Classify(fk.RefTable.Name)})
			case !hasFK && hasColumn(t, base+"_type"):
				s.Associations = append(s.Associations, &Association{Name: base, Macro: BelongsTo, Polymorphic: true})
			}
		}
		for _, r := range tables {
			for _, fk := range r.ForeignKeys {
				if len(fk.Columns) != 1 || fk.RefTable == nil || fk.RefTable.Name != t.Name {
					continue
				}
				a := &Association{Name: r.Name, Macro: HasMany, ClassName: Classify(r.Name)}
				if uniqueColumn(r, fk.Columns[0].Name) {
					a.Name, a.Macro = inflect.Singularize(r.Name), HasOne
				}
				if _, ok := s.Association(a.Name); !ok {
					s.Associations = append(s.Associations, a)
				}
			}
		}
		schemas = append(schemas, s)
	}
	return schemas
}

// Classify converts a table name into a model name ("blog_posts" => "BlogPost").
func Classify(table string) string {
	return inflect.Camelize(inflect.Singularize(table))
}

func foreignKeys(t *schema.Table) map[string]*schema.ForeignKey {
	fks := make(map[string]*schema.ForeignKey, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) == 1 {
			fks[fk.Columns[0].Name] = fk
		}
	}
	return fks
}

func hasColumn(t *schema.Table, name string) bool {
	_, ok := t.Column(name)
	return ok
}

func uniqueColumn(t *schema.Table, name string) bool {
	for _, idx := range t.Indexes {
		if idx.Unique && len(idx.Parts) == 1 && idx.Parts[0].C != nil && idx.Parts[0].C.Name == name {
			return true
		}
	}
	return false
}

// columnType converts an inspected column type to a logical type.
func columnType(ct *schema.ColumnType) string {
	if ct == nil || ct.Type == nil {
		return TypeString
	}
	switch t := ct.Type.(type) {
	case *schema.BoolType:
		return TypeBoolean
	case *schema.IntegerType:
		return TypeInteger
	case *schema.FloatType:
		return TypeFloat
	case *schema.DecimalType:
		return TypeDecimal
	case *schema.StringType:
		if lt := LogicalType(t.T); lt == TypeText {
			return TypeText
		}
		return TypeString
	case *schema.EnumType:
		return TypeString
	case *schema.TimeType:
		switch lt := LogicalType(t.T); lt {
		case TypeDate, TypeTime, TypeDateTime:
			return lt
		case "year":
			return TypeInteger
		}
		return TypeDateTime
	case *schema.UUIDType:
		return TypeUUID
	case *schema.JSONType:
		return TypeJSON
	case *schema.BinaryType:
		return TypeBinary
	default:
		return LogicalType(ct.Raw)
	}
}
