package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/orders"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
	"github.com/rogerio-castellano/shop-backoffice/internal/stats"
)

var (
	productRepo  repo.ProductRepository
	movementRepo repo.MovementRepository
	userRepo     repo.UserRepository

	orderService   *orders.Service
	statsAssembler *stats.Assembler

	responseCache                    = cache.NewLoader(cache.Nop{}, nil)
	logger        logrus.FieldLogger = logrus.StandardLogger()
	uploadDir                        = "uploads"
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetOrderService(s *orders.Service) {
	orderService = s
}

func SetStatsAssembler(a *stats.Assembler) {
	statsAssembler = a
}

// SetCache installs the loader behind the cached product and order reads. It
// must be the loader the order service invalidates through.
func SetCache(l *cache.Loader) {
	if l == nil {
		l = cache.NewLoader(cache.Nop{}, logger)
	}
	responseCache = l
}

func SetLogger(l logrus.FieldLogger) {
	logger = l
}

func SetUploadDir(dir string) {
	uploadDir = dir
}
