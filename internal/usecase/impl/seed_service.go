package impl

import (
	"context"
	"log/slog"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	hospitalRepo repository.HospitalRepository
	badgeRepo    repository.BadgeRepository
	logger       *slog.Logger
}

// SeedServiceParams holds dependencies for seedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	HospitalRepo repository.HospitalRepository
	BadgeRepo    repository.BadgeRepository
	Logger       *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		hospitalRepo: params.HospitalRepo,
		badgeRepo:    params.BadgeRepo,
		logger:       params.Logger,
	}
}

// SeedCatalogs upserts the hospital catalog and creates any missing badges.
// Safe to run repeatedly: hospitals are keyed by name and badges are created
// only when absent.
func (srv *seedService) SeedCatalogs(ctx context.Context) error {
	for _, hospital := range hospitalCatalog() {
		h := hospital
		if err := srv.hospitalRepo.Upsert(ctx, &h); err != nil {
			return errors.Wrapf(err, "failed to upsert hospital %q", h.Name)
		}
	}

	for _, badge := range entity.SeedBadges() {
		if _, err := srv.badgeRepo.FindByName(ctx, badge.Name); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrBadgeNotFound) {
			return errors.Wrapf(err, "failed to look up badge %q", badge.Name)
		}

		b := badge
		if err := srv.badgeRepo.Create(ctx, &b); err != nil {
			return errors.Wrapf(err, "failed to create badge %q", b.Name)
		}
	}

	srv.logger.Info("Catalogs seeded",
		slog.Int("hospitals", len(hospitalCatalog())),
		slog.Int("badges", len(entity.SeedBadges())),
	)

	return nil
}

func coord(v float64) *float64 {
	return &v
}

// hospitalCatalog is the Kathmandu valley hospital directory shipped with
// the application.
func hospitalCatalog() []entity.Hospital {
	return []entity.Hospital{
		{Name: "Tribhuvan University Teaching Hospital", Location: "Maharajgunj, Kathmandu", Phone: "01-4412303", Website: "https://tuth.org.np", Latitude: coord(27.7352), Longitude: coord(85.3300)},
		{Name: "Bir Hospital", Location: "Mahaboudha, Kathmandu", Phone: "01-4221119", Latitude: coord(27.7055), Longitude: coord(85.3134)},
		{Name: "Patan Hospital", Location: "Lagankhel, Lalitpur", Phone: "01-5522266", Website: "https://pahs.edu.np", Latitude: coord(27.6685), Longitude: coord(85.3203)},
		{Name: "Grande International Hospital", Location: "Dhapasi, Kathmandu", Phone: "01-5159266", Website: "https://grandehospital.com", Latitude: coord(27.7469), Longitude: coord(85.3252)},
		{Name: "Norvic International Hospital", Location: "Thapathali, Kathmandu", Phone: "01-5970032", Website: "https://norvichospital.com", Latitude: coord(27.6915), Longitude: coord(85.3184)},
		{Name: "Nepal Mediciti Hospital", Location: "Nakhkhu, Lalitpur", Phone: "01-4217766", Website: "https://nepalmediciti.com", Latitude: coord(27.6566), Longitude: coord(85.3049)},
		{Name: "Om Hospital and Research Centre", Location: "Chabahil, Kathmandu", Phone: "01-4476225", Latitude: coord(27.7173), Longitude: coord(85.3466)},
		{Name: "B and B Hospital", Location: "Gwarko, Lalitpur", Phone: "01-5533206", Website: "https://bbhospital.com.np", Latitude: coord(27.6667), Longitude: coord(85.3333)},
		{Name: "Kathmandu Medical College Teaching Hospital", Location: "Sinamangal, Kathmandu", Phone: "01-4469064", Latitude: coord(27.6964), Longitude: coord(85.3591)},
		{Name: "Nepal Medical College Teaching Hospital", Location: "Jorpati, Kathmandu", Phone: "01-4911008", Latitude: coord(27.7326), Longitude: coord(85.3891)},
		{Name: "Civil Service Hospital", Location: "Minbhawan, Kathmandu", Phone: "01-4107000", Latitude: coord(27.6886), Longitude: coord(85.3359)},
		{Name: "Shahid Gangalal National Heart Centre", Location: "Bansbari, Kathmandu", Phone: "01-4371322", Website: "https://sgnhc.org.np", Latitude: coord(27.7415), Longitude: coord(85.3367)},
		{Name: "Kanti Children's Hospital", Location: "Maharajgunj, Kathmandu", Phone: "01-4411550", Latitude: coord(27.7360), Longitude: coord(85.3278)},
		{Name: "Paropakar Maternity and Women's Hospital", Location: "Thapathali, Kathmandu", Phone: "01-4260405", Latitude: coord(27.6898), Longitude: coord(85.3165)},
		{Name: "Teku Hospital", Location: "Teku, Kathmandu", Phone: "01-4253396", Latitude: coord(27.6944), Longitude: coord(85.3034)},
		{Name: "Nepal Eye Hospital", Location: "Tripureshwor, Kathmandu", Phone: "01-4250691", Latitude: coord(27.6942), Longitude: coord(85.3122)},
		{Name: "National Kidney Center", Location: "Banasthali, Kathmandu", Phone: "01-4360466", Latitude: coord(27.7256), Longitude: coord(85.2882)},
		{Name: "HAMS Hospital", Location: "Dhumbarahi, Kathmandu", Phone: "01-4378086", Website: "https://hams.org.np", Latitude: coord(27.7314), Longitude: coord(85.3437)},
		{Name: "Vayodha Hospital", Location: "Balkhu, Kathmandu", Phone: "01-4281666", Website: "https://vayodhahospitals.com", Latitude: coord(27.6848), Longitude: coord(85.2976)},
		{Name: "Star Hospital", Location: "Sanepa, Lalitpur", Phone: "01-5550197", Latitude: coord(27.6852), Longitude: coord(85.3023)},
		{Name: "KIST Medical College Teaching Hospital", Location: "Imadol, Lalitpur", Phone: "01-5201680", Latitude: coord(27.6571), Longitude: coord(85.3419)},
		{Name: "Nepal Police Hospital", Location: "Maharajgunj, Kathmandu", Phone: "01-4412430", Latitude: coord(27.7379), Longitude: coord(85.3322)},
		{Name: "Birendra Military Hospital", Location: "Chhauni, Kathmandu", Phone: "01-4271940", Latitude: coord(27.7075), Longitude: coord(85.2892)},
		{Name: "Bhaktapur Hospital", Location: "Dudhpati, Bhaktapur", Phone: "01-6610798", Latitude: coord(27.6722), Longitude: coord(85.4180)},
		{Name: "Dhulikhel Hospital", Location: "Dhulikhel, Kavre", Phone: "011-490497", Website: "https://dhulikhelhospital.org", Latitude: coord(27.6221), Longitude: coord(85.5414)},
	}
}
