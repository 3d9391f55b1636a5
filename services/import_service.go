package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"fercullen.events/configs/configslog"
	"fercullen.events/repositories"

	"go.uber.org/zap"
)

// ImportServiceError özel servis hataları
type ImportServiceError string

func (e ImportServiceError) Error() string { return string(e) }

const (
	ErrImportEmptyCSV      ImportServiceError = "CSV dosyası başlık satırı ve en az bir veri satırı içermeli"
	ErrImportMissingColumn ImportServiceError = "CSV dosyasında zorunlu 'name' sütunu yok"
)

// ImportRow toplu içe aktarmada tek bir ham satırı temsil eder.
type ImportRow struct {
	Name            string
	Title           string
	Company         string
	Email           string
	Phone           string
	Notes           string
	EmailInviteFlag bool
}

// ImportResult toplu içe aktarmanın özetidir.
type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// IImportService toplu davetli içe aktarma için arayüz.
type IImportService interface {
	ImportCSV(ctx context.Context, r io.Reader, baseURL string) (*ImportResult, error)
	ImportRows(ctx context.Context, rows []ImportRow, baseURL string) *ImportResult
}

// ImportService IImportService arayüzünü uygular.
// Satırlar sıralı işlenir; böylece aynı batch içindeki önceki satırlara
// karşı yapılan e-posta tekrarı kontrolleri tutarlı kalır. Bir satırın
// hatası diğer satırları asla durdurmaz.
type ImportService struct {
	repo       repositories.IInviteeRepository
	inviteeSvc IInviteeService
	sendSvc    IInvitationSendService
}

// NewImportService davetli ve gönderim servisleri enjekte edilerek oluşturulur.
func NewImportService(inviteeSvc IInviteeService, sendSvc IInvitationSendService) IImportService {
	return &ImportService{
		repo:       repositories.NewInviteeRepository(),
		inviteeSvc: inviteeSvc,
		sendSvc:    sendSvc,
	}
}

// ImportCSV başlıklı bir CSV akışını çözüp satırları içe aktarır.
// Zorunlu sütun yalnızca 'name'; e-posta sütunu opsiyoneldir ama
// doluysa geçerli olmalıdır (tek e-posta politikası, bkz. DESIGN.md).
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, baseURL string) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrImportEmptyCSV
		}
		return nil, fmt.Errorf("CSV okunamadı: %w", err)
	}

	// Sütun adlarını normalize ederek indeksle.
	colIndex := make(map[string]int, len(header))
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, ErrImportMissingColumn
	}

	field := func(record []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(strings.Trim(record[idx], `"`))
	}

	result := &ImportResult{Errors: []string{}}
	rowNum := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			// Sütun sayısı uyuşmazlığı gibi satıra özgü hatalar satırı
			// atlatır, içe aktarmayı durdurmaz.
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: %v", rowNum, err))
			continue
		}

		flagRaw := strings.ToLower(field(record, "email_invite_flag"))
		row := ImportRow{
			Name:            field(record, "name"),
			Title:           field(record, "title"),
			Company:         field(record, "company"),
			Email:           field(record, "email"),
			Phone:           field(record, "phone"),
			Notes:           field(record, "notes"),
			EmailInviteFlag: flagRaw == "true" || flagRaw == "1",
		}
		s.importRow(ctx, row, rowNum, baseURL, result)
	}

	if rowNum == 0 {
		return nil, ErrImportEmptyCSV
	}

	configslog.SLog.Infof("İçe aktarma tamamlandı: %d eklendi, %d atlandı, %d hata",
		result.Added, result.Skipped, len(result.Errors))
	return result, nil
}

// ImportRows önceden çözülmüş satırları içe aktarır.
func (s *ImportService) ImportRows(ctx context.Context, rows []ImportRow, baseURL string) *ImportResult {
	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		s.importRow(ctx, row, i+1, baseURL, result)
	}
	return result
}

// importRow tek satırlık içe aktarma hattını uygular:
// doğrula → mevcut e-postayı atla → seri numarası tahsis et → kaydet →
// bayrak açıksa davetiye göndermeyi dene. E-posta gönderim hatası satır
// hatası sayılmaz; yalnızca davetiye loguna işlenir.
func (s *ImportService) importRow(ctx context.Context, row ImportRow, rowNum int, baseURL string, result *ImportResult) {
	row.Email = NormalizeEmail(row.Email)

	// 1. Doğrulama: hatalı satırlar 1 tabanlı satır numarasıyla raporlanır.
	if strings.TrimSpace(row.Name) == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: davetli adı zorunludur", rowNum))
		return
	}
	if err := ValidateEmail(row.Email); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: geçersiz e-posta adresi (%s)", rowNum, row.Email))
		return
	}

	// 2. Zaten kayıtlı e-posta: hata değil, sessizce atlanır.
	if row.Email != "" {
		exists, err := s.repo.EmailExists(ctx, row.Email, 0)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: e-posta kontrolü başarısız: %v", rowNum, err))
			return
		}
		if exists {
			result.Skipped++
			return
		}
	}

	// 3+4. Seri numarası tahsisi ve kayıt, davetli servisinin kritik
	// bölümünde yapılır.
	invitee, err := s.inviteeSvc.CreateInvitee(ctx, InviteeCreate{
		Name:            row.Name,
		Title:           row.Title,
		Company:         row.Company,
		Email:           row.Email,
		Phone:           row.Phone,
		Notes:           row.Notes,
		EmailInviteFlag: row.EmailInviteFlag,
	})
	if err != nil {
		if errors.Is(err, ErrInviteeEmailExists) {
			// Aynı batch içinde yarışan bir satır kaydı önce almış olabilir.
			result.Skipped++
			return
		}
		result.Errors = append(result.Errors, fmt.Sprintf("Satır %d: %v", rowNum, err))
		return
	}
	result.Added++

	// 5. Opsiyonel davetiye gönderimi: başarısızlık kaydı geri almaz,
	// satır hatası da sayılmaz.
	if invitee.EmailInviteFlag && invitee.Email != "" && s.sendSvc != nil {
		if _, sendErr := s.sendSvc.SendInvitationBySN(ctx, invitee.SN, baseURL); sendErr != nil {
			configslog.Log.Warn("importRow: davetiye gönderimi başarısız, kayıt korunuyor",
				zap.String("sn", invitee.SN), zap.Error(sendErr))
		}
	}
}

// CSVTemplate içe aktarma için örnek CSV şablonunu üretir.
func CSVTemplate() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"name", "title", "company", "email", "phone", "notes", "email_invite_flag"})
	_ = w.Write([]string{"John Doe", "CEO", "Example Corp", "john.doe@example.com", "+353801234567", "VIP Guest", "true"})
	_ = w.Write([]string{"Jane Smith", "Marketing Director", "Sample Ltd", "jane.smith@sample.com", "+353809876543", "Media contact", "false"})
	w.Flush()
	return b.String()
}

var _ IImportService = (*ImportService)(nil)
