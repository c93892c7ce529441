package di

import (
	"courtside/infras/push"
	"courtside/transport/http"
)

// App bundles the long-lived processes assembled by the injector: the HTTP
// server and the push-channel listener feeding cache invalidation.
type App struct {
	HTTP *http.HTTP
	Push *push.Listener
}
