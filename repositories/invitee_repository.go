package repositories

import (
	"context"
	"errors"
	"strings"

	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/models"
	"fercullen.events/pkg/queryparams"
	"fercullen.events/pkg/serialnum"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInviteeRepository davetli veritabanı işlemleri için arayüz.
type IInviteeRepository interface {
	Create(ctx context.Context, invitee *models.Invitee) error
	FindBySN(ctx context.Context, sn string) (*models.Invitee, error)
	FindByID(ctx context.Context, id uint) (*models.Invitee, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invitee, int64, error)
	Update(ctx context.Context, invitee *models.Invitee) error
	Delete(ctx context.Context, sn string) error
	EmailExists(ctx context.Context, email string, excludeID uint) (bool, error)
	SNExists(ctx context.Context, sn string) (bool, error)
	MaxSerialSuffix(ctx context.Context) (uint64, error)
	CountAll(ctx context.Context) (int64, error)
	CountInvitationSent(ctx context.Context) (int64, error)
	CountByRSVPStatus(ctx context.Context, status models.RSVPStatus) (int64, error)
	CountRSVPSubmitted(ctx context.Context) (int64, error)
	CountCheckedIn(ctx context.Context) (int64, error)
}

// InviteeRepository IInviteeRepository arayüzünü uygular.
type InviteeRepository struct {
	db *gorm.DB
}

// NewInviteeRepository yeni bir InviteeRepository örneği oluşturur.
func NewInviteeRepository() IInviteeRepository {
	return &InviteeRepository{db: configsdatabase.GetDB()}
}

// NewInviteeRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewInviteeRepositoryTx(tx *gorm.DB) IInviteeRepository {
	return &InviteeRepository{db: tx}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *InviteeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir davetli kaydı oluşturur.
func (r *InviteeRepository) Create(ctx context.Context, invitee *models.Invitee) error {
	if invitee == nil || invitee.SN == "" {
		return errors.New("seri numarası olmadan davetli oluşturulamaz")
	}
	return r.getDB(ctx).Create(invitee).Error
}

// FindBySN seri numarası ile davetliyi bulur.
func (r *InviteeRepository) FindBySN(ctx context.Context, sn string) (*models.Invitee, error) {
	if sn == "" {
		return nil, errors.New("aranacak seri numarası boş olamaz")
	}
	var invitee models.Invitee
	err := r.getDB(ctx).Where("sn = ?", sn).First(&invitee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InviteeRepository.FindBySN: DB error", zap.String("sn", sn), zap.Error(err))
		return nil, err
	}
	return &invitee, nil
}

// FindByID ID ile davetliyi bulur.
func (r *InviteeRepository) FindByID(ctx context.Context, id uint) (*models.Invitee, error) {
	if id == 0 {
		return nil, errors.New("geçersiz davetli ID")
	}
	var invitee models.Invitee
	err := r.getDB(ctx).First(&invitee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InviteeRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &invitee, nil
}

// applyInviteeFilters ortak arama/filtre/sıralama mantığını uygular.
func (r *InviteeRepository) applyInviteeFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	// Serbest metin araması: ad, e-posta, şirket, unvan ve seri numarası
	// üzerinde büyük/küçük harf duyarsız substring eşleşmesi.
	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ? OR LOWER(title) LIKE ? OR LOWER(sn) LIKE ?",
			term, term, term, term, term,
		)
	}

	// Kategorik filtreler
	switch params.Filter {
	case "sent":
		query = query.Where("invitation_sent = ?", true)
	case "not_sent":
		query = query.Where("invitation_sent = ?", false)
	case "accepted":
		query = query.Where("rsvp_status = ?", models.RSVPStatusAccepted)
	case "declined":
		query = query.Where("rsvp_status = ?", models.RSVPStatusDeclined)
	case "pending_rsvp":
		query = query.Where("rsvp_status = ? OR rsvp_status IS NULL OR rsvp_status = ''", models.RSVPStatusPending)
	case "checked_in":
		query = query.Where("checked_in = ?", true)
	case "", "all":
		// filtre yok
	default:
		configslog.SLog.Warnf("Bilinmeyen davetli filtresi istendi, yok sayılıyor: %s", params.Filter)
	}

	// Sıralama: yalnızca izin verilen sütunlar
	allowedSortColumns := map[string]string{
		"id":                 "id",
		"sn":                 "sn",
		"name":               "name",
		"email":              "email",
		"company":            "company",
		"title":              "title",
		"created_at":         "created_at",
		"updated_at":         "updated_at",
		"invitation_sent":    "invitation_sent",
		"invitation_sent_at": "invitation_sent_at",
		"rsvp_status":        "rsvp_status",
		"rsvp_submitted_at":  "rsvp_submitted_at",
		"checked_in":         "checked_in",
		"checked_in_at":      "checked_in_at",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		if params.SortBy != "" {
			configslog.SLog.Warnf("Geçersiz davetli sıralama alanı istendi, varsayılan kullanılıyor: %s", params.SortBy)
		}
		orderColumn = "created_at"
	}
	query = query.Order(orderColumn + " " + params.OrderBy)
	// Deterministik sayfalama için eşitlik bozucu sıralama
	if orderColumn != "created_at" {
		query = query.Order("created_at DESC")
	}
	if orderColumn != "id" {
		query = query.Order("id DESC")
	}

	return query
}

// FindAllPaginated davetlileri arama/filtre/sıralama uygulayarak sayfalar.
// totalCount sayfalama uygulanmadan önceki filtrelenmiş toplamı döndürür.
func (r *InviteeRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Invitee, int64, error) {
	// Boş sonuç JSON'da null değil [] olarak serileşmeli.
	invitees := []models.Invitee{}
	var totalCount int64
	db := r.getDB(ctx)

	query := r.applyInviteeFilters(db.Model(&models.Invitee{}), params)

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("InviteeRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return invitees, 0, nil
	}

	query = query.Limit(params.PerPage).Offset(params.CalculateOffset())
	if err := query.Find(&invitees).Error; err != nil {
		configslog.Log.Error("InviteeRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return invitees, totalCount, nil
}

// Update davetli kaydını kaydeder (Save kullanarak). updated_at GORM
// tarafından tazelenir.
func (r *InviteeRepository) Update(ctx context.Context, invitee *models.Invitee) error {
	if invitee == nil || invitee.ID == 0 {
		return errors.New("güncellenecek davetli geçerli değil")
	}
	return r.getDB(ctx).Save(invitee).Error
}

// Delete davetliyi kalıcı olarak siler. Seri numarası rezervasyonu
// serial_counters tablosunda korunur, yeniden kullanılmaz.
func (r *InviteeRepository) Delete(ctx context.Context, sn string) error {
	if sn == "" {
		return errors.New("silinecek seri numarası boş olamaz")
	}
	result := r.getDB(ctx).Where("sn = ?", sn).Delete(&models.Invitee{})
	if result.Error != nil {
		configslog.Log.Error("InviteeRepository.Delete: DB error", zap.String("sn", sn), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EmailExists boş olmayan bir e-postanın başka bir davetli tarafından
// kullanılıp kullanılmadığını kontrol eder.
func (r *InviteeRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	query := r.getDB(ctx).Model(&models.Invitee{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		configslog.Log.Error("InviteeRepository.EmailExists: DB error", zap.String("email", email), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// SNExists seri numarasının kayıtlı olup olmadığını kontrol eder.
func (r *InviteeRepository) SNExists(ctx context.Context, sn string) (bool, error) {
	if sn == "" {
		return false, errors.New("kontrol edilecek seri numarası boş olamaz")
	}
	var count int64
	if err := r.getDB(ctx).Model(&models.Invitee{}).Where("sn = ?", sn).Count(&count).Error; err != nil {
		configslog.Log.Error("InviteeRepository.SNExists: DB error", zap.String("sn", sn), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// MaxSerialSuffix kayıtlı davetliler arasındaki en büyük FQ-### sayısal
// ekini döndürür. Sayaç tablosunun ilk tohumlanmasında kullanılır;
// kalıcı rezervasyon sayacın kendisindedir.
func (r *InviteeRepository) MaxSerialSuffix(ctx context.Context) (uint64, error) {
	var sns []string
	if err := r.getDB(ctx).Model(&models.Invitee{}).Pluck("sn", &sns).Error; err != nil {
		configslog.Log.Error("InviteeRepository.MaxSerialSuffix: DB error", zap.Error(err))
		return 0, err
	}
	var max uint64
	for _, sn := range sns {
		if n, ok := serialnum.Parse(sn); ok && n > max {
			max = n
		}
	}
	return max, nil
}

// CountAll tüm davetlilerin sayısını döndürür.
func (r *InviteeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitee{}).Count(&count).Error
	return count, err
}

// CountInvitationSent davetiyesi gönderilmiş davetli sayısını döndürür.
func (r *InviteeRepository) CountInvitationSent(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitee{}).Where("invitation_sent = ?", true).Count(&count).Error
	return count, err
}

// CountByRSVPStatus belirli LCV durumundaki davetli sayısını döndürür.
func (r *InviteeRepository) CountByRSVPStatus(ctx context.Context, status models.RSVPStatus) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitee{}).Where("rsvp_status = ?", status).Count(&count).Error
	return count, err
}

// CountRSVPSubmitted LCV yanıtı vermiş (pending olmayan) davetli sayısını döndürür.
func (r *InviteeRepository) CountRSVPSubmitted(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitee{}).Where("rsvp_status <> ?", models.RSVPStatusPending).Count(&count).Error
	return count, err
}

// CountCheckedIn giriş yapmış davetli sayısını döndürür.
func (r *InviteeRepository) CountCheckedIn(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Invitee{}).Where("checked_in = ?", true).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IInviteeRepository = (*InviteeRepository)(nil)
