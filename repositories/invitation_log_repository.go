package repositories

import (
	"context"
	"errors"

	"fercullen.events/configs/configsdatabase"
	"fercullen.events/configs/configslog"
	"fercullen.events/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationLogRepository davetiye log kayıtları için arayüz.
// Loglar append-only'dir; güncelleme veya silme metodu yoktur.
type IInvitationLogRepository interface {
	Append(ctx context.Context, log *models.InvitationLog) error
	FindAll(ctx context.Context) ([]models.InvitationLog, error)
	FindBySN(ctx context.Context, sn string) ([]models.InvitationLog, error)
	CountAll(ctx context.Context) (int64, error)
}

// InvitationLogRepository IInvitationLogRepository arayüzünü uygular.
type InvitationLogRepository struct {
	db *gorm.DB
}

// NewInvitationLogRepository yeni bir InvitationLogRepository örneği oluşturur.
func NewInvitationLogRepository() IInvitationLogRepository {
	return &InvitationLogRepository{db: configsdatabase.GetDB()}
}

// NewInvitationLogRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewInvitationLogRepositoryTx(tx *gorm.DB) IInvitationLogRepository {
	return &InvitationLogRepository{db: tx}
}

func (r *InvitationLogRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Append yeni bir log kaydı ekler.
func (r *InvitationLogRepository) Append(ctx context.Context, log *models.InvitationLog) error {
	if log == nil || log.InviteeSN == "" {
		return errors.New("geçersiz log kaydı (seri numarası eksik)")
	}
	if err := r.getDB(ctx).Create(log).Error; err != nil {
		configslog.Log.Error("InvitationLogRepository.Append: DB error", zap.String("sn", log.InviteeSN), zap.Error(err))
		return err
	}
	return nil
}

// FindAll tüm log kayıtlarını yeniden eskiye sıralı döndürür.
func (r *InvitationLogRepository) FindAll(ctx context.Context) ([]models.InvitationLog, error) {
	var logs []models.InvitationLog
	err := r.getDB(ctx).Order("sent_at desc").Order("id desc").Find(&logs).Error
	if err != nil {
		configslog.Log.Error("InvitationLogRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// FindBySN belirli bir davetliye ait log kayıtlarını döndürür.
func (r *InvitationLogRepository) FindBySN(ctx context.Context, sn string) ([]models.InvitationLog, error) {
	if sn == "" {
		return nil, errors.New("aranacak seri numarası boş olamaz")
	}
	var logs []models.InvitationLog
	err := r.getDB(ctx).Where("invitee_sn = ?", sn).Order("sent_at desc").Order("id desc").Find(&logs).Error
	if err != nil {
		configslog.Log.Error("InvitationLogRepository.FindBySN: DB error", zap.String("sn", sn), zap.Error(err))
		return nil, err
	}
	return logs, nil
}

// CountAll toplam log sayısını döndürür.
func (r *InvitationLogRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.InvitationLog{}).Count(&count).Error
	return count, err
}

var _ IInvitationLogRepository = (*InvitationLogRepository)(nil)
