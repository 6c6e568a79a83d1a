package barter

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/internal/utils/imaging"
	"techsell-web/pkg/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBarterRemote struct {
	items       []entities.BarterItem
	nextItem    *entities.BarterItem
	lastPayload ListItemPayload
	calls       int
	err         error
}

func (f *fakeBarterRemote) FetchBarterItems(ctx context.Context, creds *gateway.Credentials) ([]entities.BarterItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeBarterRemote) ListItem(ctx context.Context, creds *gateway.Credentials, payload ListItemPayload) (*entities.BarterItem, error) {
	f.calls++
	f.lastPayload = payload
	if f.err != nil {
		return nil, f.err
	}
	return f.nextItem, nil
}

func (f *fakeBarterRemote) DelistItem(ctx context.Context, creds *gateway.Credentials, itemID string) error {
	f.calls++
	return f.err
}

type disabledS3 struct{}

func (disabledS3) Enabled() bool { return false }
func (disabledS3) UploadBytes(prefix string, data []byte, contentType string) (string, error) {
	return "", nil
}
func (disabledS3) GetPublicLinkKey(objectKey string) string { return "" }

// fileHeader builds a real multipart upload carrying the given bytes so the
// service can open it the way it opens a browser upload.
func fileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "upload.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("image")
	require.NoError(t, err)
	return header
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 20))))
	return buf.Bytes()
}

func TestDelistRefusesForeignItemWithoutRemoteCall(t *testing.T) {
	remote := &fakeBarterRemote{items: []entities.BarterItem{
		{ID: "b1", ItemName: "calculator", Owner: "alice"},
	}}
	svc := NewBarterService(remote, disabledS3{})

	_, err := svc.FetchBarterItems(context.Background(), nil)
	require.NoError(t, err)
	callsAfterFetch := remote.calls

	err = svc.DelistItem(context.Background(), nil, "b1", "bob")
	assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	assert.Equal(t, callsAfterFetch, remote.calls)
	assert.Len(t, svc.Items(), 1)
}

func TestDelistUnknownItem(t *testing.T) {
	svc := NewBarterService(&fakeBarterRemote{}, disabledS3{})

	err := svc.DelistItem(context.Background(), nil, "missing", "alice")
	assert.ErrorIs(t, err, domain.ErrBarterItemNotFound)
}

func TestDelistByOwnerRemovesItem(t *testing.T) {
	remote := &fakeBarterRemote{items: []entities.BarterItem{
		{ID: "b1", ItemName: "calculator", Owner: "alice"},
		{ID: "b2", ItemName: "desk lamp", Owner: "alice"},
	}}
	svc := NewBarterService(remote, disabledS3{})

	_, err := svc.FetchBarterItems(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DelistItem(context.Background(), nil, "b1", "alice"))
	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b2", items[0].ID)
}

func TestListItemNormalizesImageAndAppends(t *testing.T) {
	remote := &fakeBarterRemote{nextItem: &entities.BarterItem{ID: "b9", ItemName: "textbook", Owner: "alice"}}
	svc := NewBarterService(remote, disabledS3{})

	item, err := svc.ListItem(context.Background(), nil, domain.BarterListRequest{
		ItemName:              "textbook",
		Description:           "calculus, barely used",
		WantedItemDescription: "any chemistry textbook",
		Phone:                 "0123456789",
		Image:                 fileHeader(t, pngBytes(t)),
	})
	require.NoError(t, err)
	assert.Equal(t, "b9", item.ID)

	assert.Contains(t, remote.lastPayload.Image, "data:image/jpeg;base64,")
	assert.Equal(t, "textbook", remote.lastPayload.ItemName)
	assert.Len(t, svc.Items(), 1)
}

func TestListItemRejectsUndecodableUpload(t *testing.T) {
	remote := &fakeBarterRemote{}
	svc := NewBarterService(remote, disabledS3{})

	_, err := svc.ListItem(context.Background(), nil, domain.BarterListRequest{
		ItemName:              "textbook",
		Description:           "calculus",
		WantedItemDescription: "anything",
		Phone:                 "0123456789",
		Image:                 fileHeader(t, []byte("not an image")),
	})
	assert.ErrorIs(t, err, imaging.ErrImageDecode)
	assert.Zero(t, remote.calls)
}
