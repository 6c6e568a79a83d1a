package admin

import (
	"context"
	"errors"
	"testing"

	"techsell-web/entities"
	"techsell-web/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminRemote struct {
	products  []entities.Product
	barters   []entities.BarterItem
	sellers   []entities.PendingSeller
	pending   []entities.DeliveryPersonnel
	approved  []entities.DeliveryPersonnel
	err       error
	approvals []string
}

func (f *fakeAdminRemote) FetchPendingProducts(ctx context.Context, creds *gateway.Credentials) ([]entities.Product, error) {
	return f.products, f.err
}

func (f *fakeAdminRemote) ApproveProduct(ctx context.Context, creds *gateway.Credentials, productID string) error {
	f.approvals = append(f.approvals, productID)
	return f.err
}

func (f *fakeAdminRemote) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	return f.barters, f.err
}

func (f *fakeAdminRemote) DelistBarterItem(ctx context.Context, creds *gateway.Credentials, itemID string) error {
	return f.err
}

func (f *fakeAdminRemote) FetchPendingSellers(ctx context.Context, creds *gateway.Credentials) ([]entities.PendingSeller, error) {
	return f.sellers, f.err
}

func (f *fakeAdminRemote) ApproveSeller(ctx context.Context, creds *gateway.Credentials, sellerID string) error {
	f.approvals = append(f.approvals, sellerID)
	return f.err
}

func (f *fakeAdminRemote) FetchPendingPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	return f.pending, f.err
}

func (f *fakeAdminRemote) FetchApprovedPersonnel(ctx context.Context, creds *gateway.Credentials) ([]entities.DeliveryPersonnel, error) {
	return f.approved, f.err
}

func (f *fakeAdminRemote) ApproveDeliveryPersonnel(ctx context.Context, creds *gateway.Credentials, personnelID string) error {
	f.approvals = append(f.approvals, personnelID)
	return f.err
}

func TestApproveProductRemovesFromPendingList(t *testing.T) {
	remote := &fakeAdminRemote{products: []entities.Product{
		{ID: "p1", Name: "laptop stand"},
		{ID: "p2", Name: "desk fan"},
	}}
	svc := NewAdminService(remote)

	_, err := svc.FetchPendingProducts(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.ApproveProduct(context.Background(), nil, "p1"))
	pending := svc.PendingProducts()
	require.Len(t, pending, 1)
	assert.Equal(t, "p2", pending[0].ID)
	assert.Equal(t, []string{"p1"}, remote.approvals)
}

func TestFailedApprovalKeepsPendingList(t *testing.T) {
	remote := &fakeAdminRemote{sellers: []entities.PendingSeller{{ID: "s1", StoreName: "campus snacks"}}}
	svc := NewAdminService(remote)
	_, err := svc.FetchPendingSellers(context.Background(), nil)
	require.NoError(t, err)

	remote.err = errors.New("backend down")
	assert.Error(t, svc.ApproveSeller(context.Background(), nil, "s1"))
	assert.Len(t, svc.PendingSellers(), 1)
}

func TestApproveDeliveryPersonnelRefreshesApprovedRoster(t *testing.T) {
	remote := &fakeAdminRemote{
		pending:  []entities.DeliveryPersonnel{{ID: "d1", Username: "courier-one"}},
		approved: []entities.DeliveryPersonnel{{ID: "d1", Username: "courier-one", Status: "approved"}},
	}
	svc := NewAdminService(remote)

	_, err := svc.FetchPendingPersonnel(context.Background(), nil)
	require.NoError(t, err)

	approved, err := svc.ApproveDeliveryPersonnel(context.Background(), nil, "d1")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "approved", approved[0].Status)
	assert.Empty(t, svc.PendingPersonnel())
	assert.Len(t, svc.ApprovedPersonnel(), 1)
}

func TestDelistBarterItemFailureSurfaces(t *testing.T) {
	remote := &fakeAdminRemote{barters: []entities.BarterItem{{ID: "b1", ItemName: "calculator"}}}
	svc := NewAdminService(remote)

	_, err := svc.FetchBarterItems(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, svc.DelistBarterItem(context.Background(), nil, "b1"))

	remote.err = errors.New("backend down")
	assert.Error(t, svc.DelistBarterItem(context.Background(), nil, "b1"))
}
