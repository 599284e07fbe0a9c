package utils

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("abrindo sessão dry-run: %v", err)
	}
	return db
}

func TestApplyPagination(t *testing.T) {
	db := dryRunDB(t)

	limit, page := 10, 3
	stmt := ApplyPagination(db.Table("clientes"), &limit, &page).
		Find(&[]map[string]any{}).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "LIMIT") {
		t.Errorf("consulta sem LIMIT: %s", sql)
	}
	temOffset := false
	for _, v := range stmt.Vars {
		if v == 20 { // 10 por página, página 3
			temOffset = true
		}
	}
	if !temOffset {
		t.Errorf("offset 20 ausente dos binds: %v", stmt.Vars)
	}
}

func TestApplyPaginationSemParametros(t *testing.T) {
	db := dryRunDB(t)

	stmt := ApplyPagination(db.Table("clientes"), nil, nil).
		Find(&[]map[string]any{}).Statement
	if sql := stmt.SQL.String(); strings.Contains(sql, "LIMIT") {
		t.Errorf("paginação aplicada sem limit/page: %s", sql)
	}

	zero := 0
	stmt = ApplyPagination(db.Table("clientes"), &zero, &zero).
		Find(&[]map[string]any{}).Statement
	if sql := stmt.SQL.String(); strings.Contains(sql, "LIMIT") {
		t.Errorf("paginação aplicada com valores inválidos: %s", sql)
	}
}
