package receipt

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/entities"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const scenarioText = "GROCERY MART\nMilk   3.50\nBread   2.20\nTOTAL   5.70\n"

type fakeReceiptRepo struct {
	advisoryLogs []*entities.AdvisoryLog
	receipts     []*entities.Receipt
	entries      []*entities.LedgerEntry

	advisoryLogErr error
	receiptErr     error
	entriesErr     error
}

func (f *fakeReceiptRepo) CreateAdvisoryLog(_ context.Context, advisoryLog *entities.AdvisoryLog) error {
	if f.advisoryLogErr != nil {
		return f.advisoryLogErr
	}
	f.advisoryLogs = append(f.advisoryLogs, advisoryLog)
	return nil
}

func (f *fakeReceiptRepo) CreateReceipt(_ context.Context, receipt *entities.Receipt) error {
	if f.receiptErr != nil {
		return f.receiptErr
	}
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeReceiptRepo) CreateLedgerEntries(_ context.Context, entries []*entities.LedgerEntry) error {
	if f.entriesErr != nil {
		return f.entriesErr
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeReceiptRepo) GetReceiptsByUser(_ context.Context, userID string) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, r := range f.receipts {
		if r.UserID.String() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) GetReceiptByID(_ context.Context, id string) (*entities.Receipt, error) {
	for _, r := range f.receipts {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

type fakeRecognizer struct {
	text  string
	err   error
	calls int
	lang  string
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ *multipart.FileHeader, language string) (string, error) {
	f.calls++
	f.lang = language
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeAdvisor struct {
	result domain.AdvisoryResult
	err    error
	input  string
}

func (f *fakeAdvisor) GenerateAdvisory(_ context.Context, extractedText string) (domain.AdvisoryResult, error) {
	f.input = extractedText
	if f.err != nil {
		return domain.AdvisoryResult{}, f.err
	}
	return f.result, nil
}

type fakeS3 struct {
	uploaded  []string
	deleted   []string
	uploadErr error
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	key := fmt.Sprintf("%s/%s.jpg", dir, fileName)
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return link
}

type serviceFixture struct {
	service    ReceiptService
	repo       *fakeReceiptRepo
	recognizer *fakeRecognizer
	advisor    *fakeAdvisor
	s3         *fakeS3
	userID     string
}

func newServiceFixture(t *testing.T, rawText string) *serviceFixture {
	t.Helper()

	caller := &entities.User{
		ID:                 uuid.New(),
		Email:              "shopper@example.com",
		Role:               domain.RoleUser,
		LanguagePreference: "eng",
	}

	repo := &fakeReceiptRepo{}
	recognizer := &fakeRecognizer{text: rawText}
	advisor := &fakeAdvisor{result: domain.AdvisoryResult{Advice: "spend less on snacks"}}
	s3 := &fakeS3{}

	service := NewReceiptService(
		repo,
		&fakeUserRepo{users: map[string]*entities.User{caller.ID.String(): caller}},
		recognizer,
		advisor,
		s3,
	)

	return &serviceFixture{
		service:    service,
		repo:       repo,
		recognizer: recognizer,
		advisor:    advisor,
		s3:         s3,
		userID:     caller.ID.String(),
	}
}

func uploadRequest() domain.UploadReceiptRequest {
	return domain.UploadReceiptRequest{
		ReceiptImage: &multipart.FileHeader{Filename: "receipt.jpg"},
	}
}

func TestUploadReceipt_Success(t *testing.T) {
	f := newServiceFixture(t, scenarioText)

	res, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)
	require.NoError(t, err)

	// two parsed items, resolved total
	require.Len(t, res.Receipt.Items, 2)
	assert.Equal(t, "Milk", res.Receipt.Items[0].Name)
	assert.True(t, res.Receipt.Items[0].Amount.Equal(decimal.RequireFromString("3.50")))
	assert.Equal(t, "Bread", res.Receipt.Items[1].Name)
	assert.True(t, res.Receipt.Items[1].Amount.Equal(decimal.RequireFromString("2.20")))
	assert.True(t, res.Receipt.Total.Equal(decimal.RequireFromString("5.70")))
	assert.Equal(t, "spend less on snacks", res.Advisory.Advice)

	// advisory log persisted before the receipt, completed
	require.Len(t, f.repo.advisoryLogs, 1)
	assert.Equal(t, domain.AdvisoryStatusCompleted, f.repo.advisoryLogs[0].Status)
	assert.Equal(t, scenarioText, f.repo.advisoryLogs[0].InputText)

	// receipt persisted with verbatim raw text and item snapshots
	require.Len(t, f.repo.receipts, 1)
	persisted := f.repo.receipts[0]
	assert.Equal(t, scenarioText, persisted.ExtractedText)
	assert.Equal(t, f.userID, persisted.UserID.String())
	require.Len(t, persisted.Items, 2)
	assert.Equal(t, "Uncategorized", persisted.Items[0].Category)
	assert.Equal(t, 0, persisted.Items[0].Position)
	assert.Equal(t, 1, persisted.Items[1].Position)

	// one ledger entry per item, referencing the receipt
	require.Len(t, f.repo.entries, 2)
	for i, entry := range f.repo.entries {
		assert.Equal(t, persisted.ID, entry.ReceiptID)
		assert.Equal(t, persisted.Items[i].Name, entry.Description)
		assert.True(t, entry.Amount.Equal(persisted.Items[i].Amount))
		assert.Equal(t, "Uncategorized", entry.Category)
	}

	assert.Empty(t, f.s3.deleted)
	assert.Equal(t, "eng", f.recognizer.lang)
}

func TestUploadReceipt_NoFile(t *testing.T) {
	f := newServiceFixture(t, scenarioText)

	_, err := f.service.UploadReceipt(context.Background(), domain.UploadReceiptRequest{}, f.userID)

	assert.ErrorIs(t, err, domain.ErrNoFileProvided)
	assert.Zero(t, f.recognizer.calls, "recognition must not be attempted without a file")
	assert.Empty(t, f.s3.uploaded)
	assert.Empty(t, f.repo.advisoryLogs)
	assert.Empty(t, f.repo.receipts)
	assert.Empty(t, f.repo.entries)
}

func TestUploadReceipt_TotalNotFound(t *testing.T) {
	f := newServiceFixture(t, "GROCERY MART\nMilk   3.50\nThank you\n")

	_, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)

	assert.ErrorIs(t, err, domain.ErrTotalNotFound)
	assert.Empty(t, f.repo.advisoryLogs, "nothing may be persisted for an invalid receipt")
	assert.Empty(t, f.repo.receipts)
	assert.Empty(t, f.repo.entries)
	require.Len(t, f.s3.uploaded, 1)
	assert.Equal(t, f.s3.uploaded, f.s3.deleted, "uploaded image must be cleaned up")
}

func TestUploadReceipt_RecognitionUnavailable(t *testing.T) {
	f := newServiceFixture(t, "")
	f.recognizer.err = errors.New("service down")

	_, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)

	assert.ErrorIs(t, err, domain.ErrRecognitionUnavailable)
	assert.Empty(t, f.repo.advisoryLogs)
	assert.Empty(t, f.repo.receipts)
	assert.Empty(t, f.repo.entries)
	assert.Equal(t, f.s3.uploaded, f.s3.deleted)
}

func TestUploadReceipt_AdvisoryFailureIsNonFatal(t *testing.T) {
	f := newServiceFixture(t, scenarioText)
	f.advisor.err = domain.ErrAdvisoryGenerationFailed

	res, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)
	require.NoError(t, err, "receipt capture must not be blocked by the advisory feature")

	require.Len(t, f.repo.advisoryLogs, 1)
	assert.Equal(t, domain.AdvisoryStatusFailed, f.repo.advisoryLogs[0].Status)

	require.Len(t, f.repo.receipts, 1)
	require.Len(t, f.repo.entries, 2)
	assert.NotEmpty(t, res.Advisory.Advice, "caller still receives degraded advisory content")
}

func TestUploadReceipt_LedgerBatchFailureKeepsReceipt(t *testing.T) {
	f := newServiceFixture(t, scenarioText)
	f.repo.entriesErr = errors.New("write failed")

	_, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)

	require.Error(t, err)
	assert.Len(t, f.repo.receipts, 1, "no rollback of the already-written receipt")
	assert.Empty(t, f.repo.entries)
}

func TestUploadReceipt_ZeroItemsStillValid(t *testing.T) {
	f := newServiceFixture(t, "GROCERY MART\nTOTAL   5.70\n")

	res, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)
	require.NoError(t, err)

	assert.Empty(t, res.Receipt.Items)
	assert.True(t, res.Receipt.Total.Equal(decimal.RequireFromString("5.70")))
	require.Len(t, f.repo.receipts, 1)
	assert.Empty(t, f.repo.entries, "no ledger entries without parsed items")
}

func TestGetAdvice(t *testing.T) {
	f := newServiceFixture(t, scenarioText)

	res, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)
	require.NoError(t, err)

	t.Run("owner gets advice derived from the receipt", func(t *testing.T) {
		advice, err := f.service.GetAdvice(context.Background(), res.Receipt.ID, f.userID)
		require.NoError(t, err)
		assert.Equal(t, res.Receipt.ID, advice.ReceiptID)
		assert.Contains(t, advice.Advice, "2 items")
		assert.Contains(t, advice.Advice, "$5.70")
	})

	t.Run("foreign receipt is not found", func(t *testing.T) {
		_, err := f.service.GetAdvice(context.Background(), res.Receipt.ID, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
	})

	t.Run("unknown receipt is not found", func(t *testing.T) {
		_, err := f.service.GetAdvice(context.Background(), uuid.New().String(), f.userID)
		assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
	})
}

func TestGetReceipts(t *testing.T) {
	f := newServiceFixture(t, scenarioText)

	_, err := f.service.UploadReceipt(context.Background(), uploadRequest(), f.userID)
	require.NoError(t, err)

	receipts, err := f.service.GetReceipts(context.Background(), f.userID)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Len(t, receipts[0].Items, 2)

	other, err := f.service.GetReceipts(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}
