package receipt

import (
	"Spendwise-Backend/domain"
	"Spendwise-Backend/entities"
	"Spendwise-Backend/internal/utils/storage"
	"Spendwise-Backend/pkg/advisory"
	"Spendwise-Backend/pkg/ocr"
	"Spendwise-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCategory = "Uncategorized"

type (
	ReceiptService interface {
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceipts(ctx context.Context, userID string) ([]domain.ReceiptResponse, error)
		GetAdvice(ctx context.Context, receiptID string, userID string) (domain.AdviceResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		userRepository    user.UserRepository
		recognizer        ocr.Recognizer
		advisor           advisory.Generator
		s3                storage.AwsS3
	}
)

func NewReceiptService(
	receiptRepository ReceiptRepository,
	userRepository user.UserRepository,
	recognizer ocr.Recognizer,
	advisor advisory.Generator,
	s3 storage.AwsS3,
) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		userRepository:    userRepository,
		recognizer:        recognizer,
		advisor:           advisor,
		s3:                s3,
	}
}

// UploadReceipt runs the pipeline for one upload attempt: store the image,
// recognize text, extract items and total, generate advisory content, then
// materialize the advisory log, the receipt and its ledger entries in that
// order. There is no multi-record transaction; a ledger batch failure leaves
// the already-created receipt in place and surfaces the error.
func (s *receiptService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	if req.ReceiptImage == nil {
		return domain.UploadReceiptResponse{}, domain.ErrNoFileProvided
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	language := "eng"
	if caller, err := s.userRepository.GetUserByID(ctx, userID); err == nil && caller.LanguagePreference != "" {
		language = caller.LanguagePreference
	}

	receiptID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", receiptID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	rawText, err := s.recognizer.Recognize(ctx, req.ReceiptImage, language)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, domain.ErrRecognitionUnavailable
	}

	lines := ExtractLines(rawText)
	parsedItems := ParseItems(lines)

	total, err := ResolveTotal(lines)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, domain.ErrTotalNotFound
	}

	advisoryResult, advisoryErr := s.advisor.GenerateAdvisory(ctx, rawText)
	advisoryStatus := domain.AdvisoryStatusCompleted
	if advisoryErr != nil {
		advisoryStatus = domain.AdvisoryStatusFailed
		advisoryResult = domain.AdvisoryResult{
			Advice: "Advisory content is temporarily unavailable. Your receipt was still saved.",
		}
	}

	advisoryLog := &entities.AdvisoryLog{
		ID:        uuid.New(),
		UserID:    userUUID,
		InputText: rawText,
		Advice:    advisoryResult.Advice,
		Status:    advisoryStatus,
	}
	if err := s.receiptRepository.CreateAdvisoryLog(ctx, advisoryLog); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	newReceipt := &entities.Receipt{
		ID:            receiptID,
		UserID:        userUUID,
		ImageURL:      s.s3.GetPublicLinkKey(objectKey),
		ExtractedText: rawText,
		Total:         total,
	}
	for i, item := range parsedItems {
		category := item.Category
		if category == "" {
			category = defaultCategory
		}
		newReceipt.Items = append(newReceipt.Items, &entities.ReceiptItem{
			ID:        uuid.New(),
			ReceiptID: receiptID,
			Name:      item.Name,
			Amount:    item.Amount,
			Category:  category,
			Position:  i,
		})
	}

	if err := s.receiptRepository.CreateReceipt(ctx, newReceipt); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	entryDate := time.Now()
	entries := make([]*entities.LedgerEntry, 0, len(newReceipt.Items))
	for _, item := range newReceipt.Items {
		entries = append(entries, &entities.LedgerEntry{
			ID:          uuid.New(),
			UserID:      userUUID,
			Date:        entryDate,
			Category:    item.Category,
			Amount:      item.Amount,
			Description: item.Name,
			ReceiptID:   receiptID,
		})
	}

	// The receipt already exists; a client disconnect must not cancel the
	// ledger batch, or the receipt is left with no entries.
	if err := s.receiptRepository.CreateLedgerEntries(context.WithoutCancel(ctx), entries); err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	return domain.UploadReceiptResponse{
		Receipt:  receiptResponse(newReceipt),
		Advisory: advisoryResult,
	}, nil
}

func (s *receiptService) GetReceipts(ctx context.Context, userID string) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		response = append(response, receiptResponse(r))
	}
	return response, nil
}

func (s *receiptService) GetAdvice(ctx context.Context, receiptID string, userID string) (domain.AdviceResponse, error) {
	if _, err := uuid.Parse(receiptID); err != nil {
		return domain.AdviceResponse{}, domain.ErrParseUUID
	}

	foundReceipt, err := s.receiptRepository.GetReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdviceResponse{}, domain.ErrReceiptNotFound
		}
		return domain.AdviceResponse{}, err
	}

	if foundReceipt.UserID.String() != userID {
		return domain.AdviceResponse{}, domain.ErrReceiptNotFound
	}

	advice := fmt.Sprintf(
		"Based on your purchase of %d items totaling $%s, you might want to consider budgeting strategies for the next month.",
		len(foundReceipt.Items), foundReceipt.Total.StringFixed(2),
	)

	return domain.AdviceResponse{
		ReceiptID: foundReceipt.ID.String(),
		Advice:    advice,
	}, nil
}

func receiptResponse(r *entities.Receipt) domain.ReceiptResponse {
	items := make([]domain.ReceiptItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.ReceiptItemResponse{
			Name:     item.Name,
			Amount:   item.Amount,
			Category: item.Category,
		})
	}

	return domain.ReceiptResponse{
		ID:        r.ID.String(),
		ImageURL:  r.ImageURL,
		Items:     items,
		Total:     r.Total,
		CreatedAt: r.CreatedAt,
	}
}
