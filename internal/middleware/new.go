package middleware

import (
	"reporting-srv/config"
	"reporting-srv/pkg/encrypter"
	"reporting-srv/pkg/log"
	"reporting-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	serviceKeys  map[string]string
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internalCfg config.InternalConfig, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		serviceKeys:  internalCfg.ServiceKeys,
		encrypter:    enc,
	}
}
