package database

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rpupo63/cms-admin-backend/database/databasetest"
	"github.com/rpupo63/cms-admin-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var customerClasses = []string{"VIP", "GOLD", "NORMAL"}

func seedCustomers(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(&models.CustomerInfo{
			CustID:     fmt.Sprintf("cust%02d", i),
			CustNm:     fmt.Sprintf("Customer %02d", i),
			Eml:        fmt.Sprintf("cust%02d@example.com", i),
			Hp:         fmt.Sprintf("010-0000-%04d", i),
			CustClsCd:  customerClasses[i%len(customerClasses)],
			CustStatCd: "ACTIVE",
			JoinTypCd:  "WEB",
		}).Error)
	}
}

func custNos(rows []models.CustomerInfo) []int64 {
	nos := make([]int64, len(rows))
	for i, r := range rows {
		nos[i] = r.CustNo
	}
	return nos
}

func TestCustomerSearchLastPartialPage(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 25)
	repo := NewCustomerInfoRepo(db)

	result, err := repo.Search(context.Background(), CustomerInfoQuery{}, Page{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, custNos(result.Rows))
	assert.Equal(t, 3, result.TotalPages)
}

func TestCustomerSearchTotalIndependentOfPage(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 25)
	repo := NewCustomerInfoRepo(db)

	seen := map[int64]bool{}
	for _, page := range []Page{{1, 7}, {2, 7}, {3, 7}, {4, 7}, {5, 7}} {
		result, err := repo.Search(context.Background(), CustomerInfoQuery{}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(25), result.Total)
		assert.LessOrEqual(t, len(result.Rows), page.Limit)
		for _, row := range result.Rows {
			assert.False(t, seen[row.CustNo], "customer %d returned twice", row.CustNo)
			seen[row.CustNo] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestCustomerSearchPastTheEnd(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 3)

	result, err := NewCustomerInfoRepo(db).Search(context.Background(), CustomerInfoQuery{}, Page{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
	assert.Equal(t, int64(3), result.Total)
}

func TestCustomerSearchEmptyArrayIsNoConstraint(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 5)
	for _, cls := range customerClasses {
		require.NoError(t, db.Create(&models.CustomerInfo{CustNm: "Lee " + cls, CustClsCd: cls}).Error)
	}
	repo := NewCustomerInfoRepo(db)
	ctx := context.Background()

	withEmpty, err := repo.Search(ctx, CustomerInfoQuery{CustNm: "Lee", CustClsCdArray: []string{}}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	omitted, err := repo.Search(ctx, CustomerInfoQuery{CustNm: "Lee"}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(3), omitted.Total)
	assert.Equal(t, omitted.Total, withEmpty.Total)
	assert.Equal(t, custNos(omitted.Rows), custNos(withEmpty.Rows))

	restricted, err := repo.Search(ctx, CustomerInfoQuery{CustNm: "Lee", CustClsCdArray: []string{"VIP", "GOLD"}}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), restricted.Total)
	for _, row := range restricted.Rows {
		assert.Contains(t, []string{"VIP", "GOLD"}, row.CustClsCd)
	}
}

func TestCustomerSearchFilters(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 12)
	repo := NewCustomerInfoRepo(db)
	ctx := context.Background()
	page := Page{Page: 1, Limit: 50}

	t.Run("substring is case sensitive", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{CustNm: "customer"}, page)
		require.NoError(t, err)
		assert.Zero(t, result.Total)
	})

	t.Run("substring on email", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{Eml: "cust1"}, page)
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 11, 12}, custNos(result.Rows))
	})

	t.Run("percent is a wildcard", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{CustNm: "%"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(12), result.Total)
	})

	t.Run("exact number", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{CustNo: "7"}, page)
		require.NoError(t, err)
		assert.Equal(t, []int64{7}, custNos(result.Rows))
	})

	t.Run("exact code anded with substring", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{CustClsCd: "VIP", CustNm: "Customer 0"}, page)
		require.NoError(t, err)
		// i%3 == 0 maps to VIP
		assert.Equal(t, []int64{3, 6, 9}, custNos(result.Rows))
	})

	t.Run("no match", func(t *testing.T) {
		result, err := repo.Search(ctx, CustomerInfoQuery{JoinTypCdArray: []string{"APP"}}, page)
		require.NoError(t, err)
		assert.Zero(t, result.Total)
		assert.Equal(t, 0, result.TotalPages)
	})
}

func TestCustomerFindByNo(t *testing.T) {
	db := databasetest.New(t)
	seedCustomers(t, db, 2)
	repo := NewCustomerInfoRepo(db)

	customer, err := repo.FindByNo(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Customer 02", customer.CustNm)

	_, err = repo.FindByNo(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCustomerInfoQueryAcceptsCodeLists(t *testing.T) {
	var q CustomerInfoQuery
	require.NoError(t, json.Unmarshal([]byte(`{
		"cust_nm": "Lee",
		"cust_cls_cd": ["VIP", "GOLD"],
		"cust_stat_cd": "ACTIVE",
		"join_typ_cd": null,
		"join_typ_cd_array": ["WEB"]
	}`), &q))

	assert.Equal(t, "Lee", q.CustNm)
	assert.Empty(t, q.CustClsCd)
	assert.Equal(t, []string{"VIP", "GOLD"}, q.CustClsCdArray)
	assert.Equal(t, "ACTIVE", q.CustStatCd)
	assert.Empty(t, q.CustStatCdArray)
	assert.Empty(t, q.JoinTypCd)
	assert.Equal(t, []string{"WEB"}, q.JoinTypCdArray)

	var empty CustomerInfoQuery
	require.NoError(t, json.Unmarshal([]byte(`{"cust_cls_cd":[],"join_typ_cd":[],"cust_stat_cd":[]}`), &empty))
	assert.Empty(t, empty.Filter().Present())

	assert.Error(t, json.Unmarshal([]byte(`{"cust_cls_cd":{"a":1}}`), &q))
}
