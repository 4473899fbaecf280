package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mysql-typemap/internal/analyze"
	"mysql-typemap/internal/diagnostic"
	"mysql-typemap/primitive"
	"mysql-typemap/typemap"
)

// Column is one resolved struct field.
type Column struct {
	Field     string `yaml:"field"`
	Name      string `yaml:"column"`
	GoType    string `yaml:"go_type"`
	StoreType string `yaml:"store_type"`
	DbType    string `yaml:"db_type"`
	Size      *int   `yaml:"size,omitempty"`
	Unicode   bool   `yaml:"unicode"`
	Key       bool   `yaml:"key,omitempty"`
	Index     bool   `yaml:"index,omitempty"`

	mapping *typemap.Mapping
}

// Mapping returns the resolved descriptor.
func (c Column) Mapping() *typemap.Mapping {
	return c.mapping
}

// Table holds the columns resolved for one struct.
type Table struct {
	Struct  string   `yaml:"struct"`
	Columns []Column `yaml:"columns"`
}

// Report is the outcome of resolving a type graph.
type Report struct {
	Tables      []Table                `yaml:"tables"`
	Diagnostics diagnostic.Diagnostics `yaml:"-"`
}

// Builder resolves analyzed structs with a typemap.Resolver.
type Builder struct {
	resolver typemap.Resolver
	logger   *slog.Logger
}

// NewBuilder creates a Builder. A nil logger discards log output.
func NewBuilder(resolver typemap.Resolver, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Builder{
		resolver: resolver,
		logger:   logger,
	}
}

// Build resolves every struct of graph. Structs are resolved concurrently;
// the report keeps the graph's sorted order.
func (b *Builder) Build(ctx context.Context, graph *analyze.TypeGraph) (*Report, error) {
	structs := graph.Sorted()
	tables := make([]Table, len(structs))
	diags := make([]diagnostic.Diagnostics, len(structs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range structs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			tables[i], diags[i] = b.buildTable(s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	r := &Report{Tables: tables}
	for _, d := range diags {
		r.Diagnostics.Merge(d)
	}

	return r, nil
}

func (b *Builder) buildTable(s *analyze.StructInfo) (Table, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	name := s.ID.Short()
	table := Table{Struct: name, Columns: []Column{}}

	for i := range s.Fields {
		f := &s.Fields[i]

		col, err := b.resolveField(f)
		if err != nil {
			var fe *fieldError
			if errors.As(err, &fe) {
				diags.AddError(fe.code, fe.Error(), name, f.Name)
			}
			continue
		}

		if f.Column.MaxLength != nil && !acceptsLength(col.mapping) {
			diags.AddWarning(diagnostic.CodeIgnoredConstraint,
				fmt.Sprintf("max length ignored for %s", f.TypeString()), name, f.Name)
		}

		b.logger.Debug("resolved column",
			"struct", name, "field", f.Name, "go_type", col.GoType, "store_type", col.StoreType)

		table.Columns = append(table.Columns, col)
	}

	return table, diags
}

func (b *Builder) resolveField(f *analyze.FieldInfo) (Column, error) {
	if f.TagErr != nil {
		return Column{}, &fieldError{code: diagnostic.CodeInvalidTag, err: f.TagErr}
	}

	rtype, ok := analyze.ReflectType(f.GoType)
	if !ok {
		return Column{}, &fieldError{
			code: diagnostic.CodeNoMapping,
			err:  fmt.Errorf("no column type for %s", f.TypeString()),
		}
	}

	mapping, err := b.resolver.FindCustomMapping(typemap.Property{
		Name:         f.Name,
		Type:         rtype,
		MaxLength:    f.Column.MaxLength,
		IsKey:        f.Column.Key,
		IsIndex:      f.Column.Index,
		IsRowVersion: f.Column.RowVersion,
	})
	if err != nil {
		return Column{}, &fieldError{code: diagnostic.CodeInvalidConstraint, err: err}
	}

	if mapping == nil {
		return Column{}, &fieldError{
			code: diagnostic.CodeNoMapping,
			err:  fmt.Errorf("no column type for %s", f.TypeString()),
		}
	}

	col := Column{
		Field:     f.Name,
		Name:      f.ColumnName(),
		GoType:    f.TypeString(),
		StoreType: mapping.StoreType(),
		DbType:    mapping.DbType().String(),
		Unicode:   mapping.IsUnicode(),
		Key:       f.Column.Key,
		Index:     f.Column.Index,
		mapping:   mapping,
	}
	if size, ok := mapping.Size(); ok {
		col.Size = &size
	}

	return col, nil
}

// acceptsLength reports whether a declared max length can shape the column.
func acceptsLength(m *typemap.Mapping) bool {
	switch m.DbType().Family() {
	case primitive.FamilyText, primitive.FamilyBinary:
		return m.StoreType() != "json"
	default:
		return false
	}
}

type fieldError struct {
	code string
	err  error
}

func (e *fieldError) Error() string { return e.err.Error() }

func (e *fieldError) Unwrap() error { return e.err }
