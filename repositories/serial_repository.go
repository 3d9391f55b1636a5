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

// ISerialRepository kalıcı seri numarası sayacı için arayüz.
// Sayaç yalnızca artar; davetli silinse bile geri sarılmaz. Böylece bir
// seri numarası hiçbir zaman yeniden dağıtılmaz.
type ISerialRepository interface {
	// Next sayacı bir artırıp yeni değeri döndürür. Sayaç satırı yoksa
	// seed değeriyle tohumlanır (mevcut en büyük sayısal ek) ve seed+1 döner.
	Next(ctx context.Context, name string, seed uint64) (uint64, error)
	// Current sayacın mevcut değerini döndürür; satır yoksa 0 döner.
	Current(ctx context.Context, name string) (uint64, error)
}

// SerialRepository ISerialRepository arayüzünü uygular.
type SerialRepository struct {
	db *gorm.DB
}

// NewSerialRepository yeni bir SerialRepository örneği oluşturur.
func NewSerialRepository() ISerialRepository {
	return &SerialRepository{db: configsdatabase.GetDB()}
}

// NewSerialRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewSerialRepositoryTx(tx *gorm.DB) ISerialRepository {
	return &SerialRepository{db: tx}
}

func (r *SerialRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Next sayacı atomik olarak artırır ve yeni değeri okur.
// Çağıranın tahsis+ekleme bölümünü serileştirmesi beklenir (servis
// katmanındaki mutex); buradaki artış yine de tek UPDATE ifadesiyle yapılır.
func (r *SerialRepository) Next(ctx context.Context, name string, seed uint64) (uint64, error) {
	if name == "" {
		return 0, errors.New("sayaç adı boş olamaz")
	}
	db := r.getDB(ctx)

	var counter models.SerialCounter
	err := db.Where("name = ?", name).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// İlk kullanım: mevcut kayıtların en büyük ekiyle tohumla.
		counter = models.SerialCounter{Name: name, Value: seed}
		if err := db.Create(&counter).Error; err != nil {
			configslog.Log.Error("SerialRepository.Next: sayaç tohumlanamadı", zap.String("name", name), zap.Error(err))
			return 0, err
		}
	} else if err != nil {
		configslog.Log.Error("SerialRepository.Next: sayaç okunamadı", zap.String("name", name), zap.Error(err))
		return 0, err
	}

	result := db.Model(&models.SerialCounter{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		configslog.Log.Error("SerialRepository.Next: sayaç artırılamadı", zap.String("name", name), zap.Error(result.Error))
		return 0, result.Error
	}

	if err := db.Where("name = ?", name).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// Current sayacın mevcut değerini döndürür.
func (r *SerialRepository) Current(ctx context.Context, name string) (uint64, error) {
	var counter models.SerialCounter
	err := r.getDB(ctx).Where("name = ?", name).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

var _ ISerialRepository = (*SerialRepository)(nil)
