package providers

import (
	"github.com/samber/do/v2"

	"github.com/neocare/neocare-server/internal/auth"
	"github.com/neocare/neocare-server/internal/logger"
	"github.com/neocare/neocare-server/internal/service"
)

// ProvideServices provides the full application service bundle.
func ProvideServices(i do.Injector) (*service.Services, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewServices(storeHandle.Store, tokens, log.Logger), nil
}
