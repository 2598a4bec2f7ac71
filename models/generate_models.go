package models

import (
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Schema tooling used by the `generate` and `report` commands.

`generate` migrates the three tables and writes typed query helpers with gorm gen.
`report` lists database columns that no model field maps to, for example:

	--- Table: tcus_cust_m ---
	Found 2 columns not accounted for in model:
	  - rgst_chnl_cd
	  - mktg_rcv_yn
*/

// Models lists every persisted struct
func Models() []any {
	return []any{&BlogPost{}, &Agreement{}, &CustomerInfo{}}
}

// Migrate creates the agreement schema when needed and auto-migrates all tables
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS dfp`).Error; err != nil {
			return fmt.Errorf("creating schema dfp: %w", err)
		}
	}

	if err := db.Session(&gorm.Session{SkipDefaultTransaction: true}).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrating models: %w", err)
	}
	return nil
}

// GenerateQueries writes gorm gen query helpers for every model into outPath
func GenerateQueries(db *gorm.DB, outPath string) {
	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)
	g.ApplyBasic(BlogPost{}, Agreement{}, CustomerInfo{})
	g.Execute()
}

// TableReport is the result of comparing one table against its model
type TableReport struct {
	Table      string
	Exists     bool
	Unmapped   []string
	NotInTable []string
}

// ColumnMismatchReport compares live columns with the column tags of each model
func ColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	reports := make([]TableReport, 0, len(Models()))

	for _, model := range Models() {
		table := model.(interface{ TableName() string }).TableName()

		dbColumns, err := tableColumns(db, table)
		if err != nil {
			return nil, err
		}

		report := TableReport{Table: table, Exists: len(dbColumns) > 0}
		if report.Exists {
			modelColumns := ModelColumns(model)
			report.Unmapped = missingFrom(dbColumns, modelColumns)
			report.NotInTable = missingFrom(modelColumns, dbColumns)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// tableColumns returns nothing for a missing table. Schema-qualified names are honoured.
func tableColumns(db *gorm.DB, table string) ([]string, error) {
	schema, name := "", table
	if i := strings.IndexByte(table, '.'); i >= 0 {
		schema, name = table[:i], table[i+1:]
	}

	query := `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		AND table_schema = COALESCE(NULLIF(?, ''), CURRENT_SCHEMA())
		ORDER BY ordinal_position
	`

	var columns []string
	if err := db.Raw(query, name, schema).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
	}
	return columns, nil
}

// ModelColumns extracts the gorm column names declared on a struct
func ModelColumns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		if column := columnFromGormTag(t.Field(i).Tag.Get("gorm")); column != "" {
			columns = append(columns, column)
		}
	}
	return columns
}

func columnFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

// missingFrom returns the entries of have that are absent from want
func missingFrom(have, want []string) []string {
	wantSet := make(map[string]bool, len(want))
	for _, w := range want {
		wantSet[w] = true
	}

	var missing []string
	for _, h := range have {
		if !wantSet[h] {
			missing = append(missing, h)
		}
	}
	return missing
}
