package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/models"
	"fercullen.events/pkg/queryparams"
	"fercullen.events/pkg/serialnum"
	"fercullen.events/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InviteeServiceError özel servis hataları
type InviteeServiceError string

func (e InviteeServiceError) Error() string { return string(e) }

const (
	ErrInviteeNotFound       InviteeServiceError = "davetli bulunamadı"
	ErrInviteeNameRequired   InviteeServiceError = "davetli adı zorunludur"
	ErrInviteeInvalidEmail   InviteeServiceError = "geçersiz e-posta adresi"
	ErrInviteeEmailExists    InviteeServiceError = "bu e-posta adresi başka bir davetliye kayıtlı"
	ErrInviteeSNExists       InviteeServiceError = "bu seri numarası zaten kayıtlı"
	ErrInviteeInvalidInput   InviteeServiceError = "geçersiz girdi verisi"
	ErrInviteeCreationFailed InviteeServiceError = "davetli oluşturulamadı"
	ErrInviteeUpdateFailed   InviteeServiceError = "davetli güncellenemedi"
	ErrInviteeDeletionFailed InviteeServiceError = "davetli silinemedi"
)

// InviteeCreate yeni davetli oluşturma girdisi.
type InviteeCreate struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes"`
	EmailInviteFlag bool   `json:"email_invite_flag"`
}

// IInviteeService davetli işlemleri için arayüz.
type IInviteeService interface {
	CreateInvitee(ctx context.Context, data InviteeCreate) (*models.Invitee, error)
	GetInviteeBySN(ctx context.Context, sn string) (*models.Invitee, error)
	GetInviteeByID(ctx context.Context, id uint) (*models.Invitee, error)
	ListInvitees(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateInvitee(ctx context.Context, sn string, updates models.InviteeUpdate) (*models.Invitee, error)
	DeleteInvitee(ctx context.Context, sn string) error
}

// InviteeService IInviteeService arayüzünü uygular.
type InviteeService struct {
	repo repositories.IInviteeRepository
	db   *gorm.DB

	// Seri numarası tahsisi ile ekleme arasındaki oku-hesapla-yaz
	// bölümünü serileştirir. Eşzamanlı Create çağrılarının aynı
	// numarayı alması bu kilitle engellenir.
	mu sync.Mutex
}

// NewInviteeService yeni bir InviteeService örneği oluşturur.
func NewInviteeService() IInviteeService {
	return &InviteeService{
		repo: repositories.NewInviteeRepository(),
		db:   configsdatabase.GetDB(),
	}
}

// E-posta format kontrolü: boşluksuz local@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail e-postayı kırpar ve küçük harfe çevirir.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail boş olmayan bir e-postanın sözdizimini doğrular.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %s", ErrInviteeInvalidEmail, email)
	}
	return nil
}

// validateCreate girdiyi normalize edip doğrular.
func validateCreate(data *InviteeCreate) error {
	data.Name = strings.TrimSpace(data.Name)
	data.Title = strings.TrimSpace(data.Title)
	data.Company = strings.TrimSpace(data.Company)
	data.Email = NormalizeEmail(data.Email)
	data.Phone = strings.TrimSpace(data.Phone)
	data.Notes = strings.TrimSpace(data.Notes)

	if data.Name == "" {
		return ErrInviteeNameRequired
	}
	if err := ValidateEmail(data.Email); err != nil {
		return err
	}
	// E-posta yoksa otomatik gönderim bayrağının anlamı yok.
	if data.Email == "" {
		data.EmailInviteFlag = false
	}
	return nil
}

// CreateInvitee yeni bir davetli oluşturur. Seri numarası tahsisi ve
// ekleme tek kritik bölüm içinde, tek transaction'da yapılır.
func (s *InviteeService) CreateInvitee(ctx context.Context, data InviteeCreate) (*models.Invitee, error) {
	if err := validateCreate(&data); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var created *models.Invitee
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		inviteeRepo := repositories.NewInviteeRepositoryTx(tx)
		serialRepo := repositories.NewSerialRepositoryTx(tx)

		// Benzersizlik kontrolleri mutasyondan önce yapılır.
		if data.Email != "" {
			exists, err := inviteeRepo.EmailExists(txCtx, data.Email, 0)
			if err != nil {
				return err
			}
			if exists {
				return ErrInviteeEmailExists
			}
		}

		sn, err := s.nextSerial(txCtx, inviteeRepo, serialRepo)
		if err != nil {
			return err
		}

		invitee := models.Invitee{
			SN:              sn,
			Name:            data.Name,
			Title:           data.Title,
			Company:         data.Company,
			Email:           data.Email,
			Phone:           data.Phone,
			Notes:           data.Notes,
			EmailInviteFlag: data.EmailInviteFlag,
			InvitationSent:  false,
			RSVPStatus:      models.RSVPStatusPending,
			CheckedIn:       false,
		}
		if err := inviteeRepo.Create(txCtx, &invitee); err != nil {
			configslog.Log.Error("CreateInvitee: kayıt eklenemedi", zap.String("sn", sn), zap.Error(err))
			return ErrInviteeCreationFailed
		}
		created = &invitee
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("Davetli oluşturuldu: %s (%s)", created.SN, created.Name)
	return created, nil
}

// nextSerial kalıcı sayaçtan bir sonraki seri numarasını alır.
// Sayaç ilk kullanımda mevcut kayıtların en büyük ekiyle tohumlanır.
// Sayaç kullanılamıyorsa tahsis yapılmaz ve oluşturma başarısız olur;
// başarısız transaction içinde üretilecek alternatif bir numara hem
// işlemez hem de sayaç o değere ulaştığında kalıcı çakışma yaratır.
func (s *InviteeService) nextSerial(ctx context.Context, inviteeRepo repositories.IInviteeRepository, serialRepo repositories.ISerialRepository) (string, error) {
	seed, err := inviteeRepo.MaxSerialSuffix(ctx)
	if err != nil {
		return "", err
	}
	n, err := serialRepo.Next(ctx, models.SerialCounterInvitee, seed)
	if err != nil {
		configslog.Log.Error("nextSerial: seri numarası sayacı kullanılamıyor, tahsis iptal edildi", zap.Error(err))
		return "", ErrInviteeCreationFailed
	}
	return serialnum.Format(n), nil
}

// GetInviteeBySN seri numarası ile davetliyi getirir.
func (s *InviteeService) GetInviteeBySN(ctx context.Context, sn string) (*models.Invitee, error) {
	invitee, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return invitee, nil
}

// GetInviteeByID ID ile davetliyi getirir.
func (s *InviteeService) GetInviteeByID(ctx context.Context, id uint) (*models.Invitee, error) {
	invitee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}
	return invitee, nil
}

// ListInvitees davetlileri arama/filtre/sıralama ile sayfalayarak getirir.
func (s *InviteeService) ListInvitees(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	invitees, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	} // Repo loglar

	return &queryparams.PaginatedResult{
		Data: invitees,
		Meta: queryparams.NewMeta(params, totalCount),
	}, nil
}

// UpdateInvitee davetlinin iletişim alanlarını kısmen günceller.
// SN ve ID değiştirilemez; durum alanları kendi servislerinde değişir.
func (s *InviteeService) UpdateInvitee(ctx context.Context, sn string, updates models.InviteeUpdate) (*models.Invitee, error) {
	invitee, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, err
	}

	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		if name == "" {
			return nil, ErrInviteeNameRequired
		}
		invitee.Name = name
	}
	if updates.Title != nil {
		invitee.Title = strings.TrimSpace(*updates.Title)
	}
	if updates.Company != nil {
		invitee.Company = strings.TrimSpace(*updates.Company)
	}
	if updates.Email != nil {
		email := NormalizeEmail(*updates.Email)
		if err := ValidateEmail(email); err != nil {
			return nil, err
		}
		if email != "" && email != invitee.Email {
			exists, exErr := s.repo.EmailExists(ctx, email, invitee.ID)
			if exErr != nil {
				return nil, exErr
			}
			if exists {
				return nil, ErrInviteeEmailExists
			}
		}
		invitee.Email = email
		if email == "" {
			invitee.EmailInviteFlag = false
		}
	}
	if updates.Phone != nil {
		invitee.Phone = strings.TrimSpace(*updates.Phone)
	}
	if updates.Notes != nil {
		invitee.Notes = strings.TrimSpace(*updates.Notes)
	}
	if updates.EmailInviteFlag != nil {
		invitee.EmailInviteFlag = *updates.EmailInviteFlag && invitee.Email != ""
	}

	if err := s.repo.Update(ctx, invitee); err != nil {
		configslog.Log.Error("UpdateInvitee: kayıt güncellenemedi", zap.String("sn", sn), zap.Error(err))
		return nil, ErrInviteeUpdateFailed
	}
	return invitee, nil
}

// DeleteInvitee davetliyi kalıcı olarak siler. Seri numarası sayaçta
// rezerve kalır, yeniden kullanılmaz.
func (s *InviteeService) DeleteInvitee(ctx context.Context, sn string) error {
	err := s.repo.Delete(ctx, sn)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInviteeNotFound
		}
		configslog.Log.Error("DeleteInvitee: kayıt silinemedi", zap.String("sn", sn), zap.Error(err))
		return ErrInviteeDeletionFailed
	}
	configslog.SLog.Infof("Davetli silindi: %s", sn)
	return nil
}

var _ IInviteeService = (*InviteeService)(nil)
