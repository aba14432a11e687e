package source_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/onm/internal/category"
	"github.com/MrJamesThe3rd/onm/internal/connection"
	"github.com/MrJamesThe3rd/onm/internal/connection/cardcsv"
	"github.com/MrJamesThe3rd/onm/internal/cursor"
	"github.com/MrJamesThe3rd/onm/internal/ledger"
	"github.com/MrJamesThe3rd/onm/internal/source"
)

const token = "access-sandbox-123"

var upstreamBalances = []connection.AccountBalance{
	{ID: "acc-1", DisplayName: "Gold Checking", Type: ledger.AccountTypeAsset, Balance: decimal.NewFromInt(110)},
	{ID: "acc-2", DisplayName: "Platinum Card", Type: ledger.AccountTypeLiability, Balance: decimal.RequireFromString("410.25")},
}

func newPlaidSource(t *testing.T, ctrl *gomock.Controller) (source.Source, *connection.MockConnection, *source.MockLinker, *source.Factory) {
	t.Helper()

	conn := connection.NewMockConnection(ctrl)
	linker := source.NewMockLinker(ctrl)
	factory := source.NewFactory(category.DefaultTables(), conn, linker)

	linker.EXPECT().AccessToken(gomock.Any()).Return(token, nil)
	conn.EXPECT().AccountBalances(gomock.Any(), token).Return(upstreamBalances, nil)

	src, err := factory.Create(context.Background(), ledger.KindPlaid, "bank")
	require.NoError(t, err)

	return src, conn, linker, factory
}

func TestFactory_Create_Plaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src, _, _, _ := newPlaidSource(t, ctrl)

	assert.Equal(t, "bank", src.Name())
	assert.Equal(t, ledger.KindPlaid, src.Kind())
	assert.Equal(t, source.Record{
		Kind:        ledger.KindPlaid,
		Name:        "bank",
		AccessToken: token,
		Accounts: []source.AccountRecord{
			{ID: "acc-1", Name: "Gold Checking", Type: ledger.AccountTypeAsset},
			{ID: "acc-2", Name: "Platinum Card", Type: ledger.AccountTypeLiability},
		},
	}, src.Record())
}

func TestFactory_Create_Errors(t *testing.T) {
	ctx := context.Background()
	tables := category.DefaultTables()

	t.Run("Unsupported kind", func(t *testing.T) {
		_, err := source.NewFactory(tables, nil, nil).Create(ctx, "mint_csv", "mint")
		assert.ErrorIs(t, err, ledger.ErrUnsupportedSourceKind)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, err := source.NewFactory(tables, nil, nil).Create(ctx, ledger.KindAmexCSV, "")
		assert.Error(t, err)
	})

	t.Run("No aggregator", func(t *testing.T) {
		_, err := source.NewFactory(tables, nil, nil).Create(ctx, ledger.KindPlaid, "bank")
		assert.ErrorIs(t, err, source.ErrNoAggregator)
	})

	t.Run("Link fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		linker := source.NewMockLinker(ctrl)
		linker.EXPECT().AccessToken(gomock.Any()).Return("", errors.New("closed browser"))

		_, err := source.NewFactory(tables, connection.NewMockConnection(ctrl), linker).Create(ctx, ledger.KindPlaid, "bank")
		assert.ErrorContains(t, err, "closed browser")
	})
}

func TestFactory_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plaidSrc, _, _, factory := newPlaidSource(t, ctrl)

	amex, err := factory.Create(context.Background(), ledger.KindAmexCSV, "amex")
	require.NoError(t, err)

	apple, err := factory.Create(context.Background(), ledger.KindAppleCSV, "apple card")
	require.NoError(t, err)

	for _, src := range []source.Source{plaidSrc, amex, apple} {
		t.Run(src.Name(), func(t *testing.T) {
			got, err := factory.Deserialize(src.Record())
			require.NoError(t, err)
			assert.Equal(t, src, got)
			assert.Equal(t, src.Record(), got.Record())
		})
	}

	_, err = factory.Deserialize(source.Record{Kind: "mint_csv", Name: "mint"})
	assert.ErrorIs(t, err, ledger.ErrUnsupportedSourceKind)
}

func TestPlaidSource_AccountBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src, conn, _, _ := newPlaidSource(t, ctrl)

	conn.EXPECT().AccountBalances(gomock.Any(), token).Return(upstreamBalances, nil)

	got, err := src.AccountBalances(context.Background(), conn)
	require.NoError(t, err)
	assert.Equal(t, []ledger.Account{
		{Name: "Gold Checking", Type: ledger.AccountTypeAsset, Balance: decimal.NewFromInt(110)},
		{Name: "Platinum Card", Type: ledger.AccountTypeLiability, Balance: decimal.RequireFromString("410.25")},
	}, got)

	conn.EXPECT().AccountBalances(gomock.Any(), token).
		Return([]connection.AccountBalance{{ID: "acc-9", DisplayName: "New Savings"}}, nil)

	_, err = src.AccountBalances(context.Background(), conn)
	assert.ErrorIs(t, err, source.ErrAccountNotMapped)
}

func TestPlaidSource_SyncTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src, conn, _, _ := newPlaidSource(t, ctrl)
	day := civil.Date{Year: 2024, Month: 3, Day: 1}

	conn.EXPECT().SyncTransactions(gomock.Any(), nil, token).Return(&connection.SyncResult{
		Transactions: []connection.RawTransaction{
			{
				Date:             day,
				Description:      "Shell",
				Amount:           decimal.NewFromInt(30),
				Type:             ledger.TypeDebit,
				PrimaryCategory:  "TRANSPORTATION",
				DetailedCategory: "TRANSPORTATION_GAS",
				AccountID:        "acc-2",
			},
		},
		Cursor: cursor.Aggregator{Token: "c1"},
	}, nil)

	got, err := src.SyncTransactions(context.Background(), conn, nil)
	require.NoError(t, err)
	assert.Equal(t, cursor.Aggregator{Token: "c1"}, got.Cursor)
	assert.Equal(t, []ledger.Transaction{{
		Date:        day,
		Description: "Shell",
		Amount:      decimal.NewFromInt(30),
		Category:    "TRANSPORTATION:GAS",
		AccountName: "Platinum Card",
		Type:        ledger.TypeDebit,
	}}, got.Transactions)
}

func TestPlaidSource_UpdateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src, _, linker, _ := newPlaidSource(t, ctrl)

	linker.EXPECT().UpdateLink(gomock.Any(), token).Return(nil)
	require.NoError(t, src.UpdateLink(context.Background(), linker))

	assert.ErrorIs(t, src.UpdateLink(context.Background(), nil), source.ErrNoLinker)
}

func TestCSVSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := source.NewFactory(category.DefaultTables(), nil, nil)
	ctx := context.Background()

	src, err := factory.Create(ctx, ledger.KindAmexCSV, "amex gold")
	require.NoError(t, err)

	conn := connection.NewMockConnection(ctrl)
	conn.EXPECT().AccountBalances(gomock.Any(), "").
		Return([]connection.AccountBalance{{ID: "amex", DisplayName: "amex", Balance: decimal.Zero}}, nil)

	accounts, err := src.AccountBalances(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, []ledger.Account{{Name: "amex gold", Type: ledger.AccountTypeLiability, Balance: decimal.Zero}}, accounts)

	wm := cursor.Watermark{LatestDate: civil.Date{Year: 2024, Month: 3, Day: 12}}
	conn.EXPECT().SyncTransactions(gomock.Any(), nil, "").Return(&connection.SyncResult{
		Transactions: []connection.RawTransaction{{
			Date:             wm.LatestDate,
			Description:      "VERIZON WIRELESS",
			Amount:           decimal.NewFromInt(5),
			Type:             ledger.TypeDebit,
			PrimaryCategory:  "Communications",
			DetailedCategory: "Mobile",
			AccountID:        "amex",
		}},
		Cursor: wm,
	}, nil)

	res, err := src.SyncTransactions(ctx, conn, nil)
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "amex gold", res.Transactions[0].AccountName)
	assert.Equal(t, "RENT_AND_UTILITIES:TELEPHONE", res.Transactions[0].Category)
	assert.Equal(t, wm, res.Cursor)

	assert.NoError(t, src.UpdateLink(ctx, nil))
	assert.Equal(t, source.Record{Kind: ledger.KindAmexCSV, Name: "amex gold"}, src.Record())
}

func TestFactory_Connection(t *testing.T) {
	factory := source.NewFactory(category.DefaultTables(), nil, nil)

	conn, err := factory.Connection(ledger.KindAppleCSV, "/tmp/apple.csv")
	require.NoError(t, err)
	assert.IsType(t, &cardcsv.Connection{}, conn)

	_, err = factory.Connection(ledger.KindAmexCSV, "")
	assert.Error(t, err)

	_, err = factory.Connection(ledger.KindPlaid, "")
	assert.ErrorIs(t, err, source.ErrNoAggregator)

	_, err = factory.Connection("mint_csv", "/tmp/mint.csv")
	assert.ErrorIs(t, err, ledger.ErrUnsupportedSourceKind)
}
