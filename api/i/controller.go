package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned API group.
type Controller interface {
	Register(*gin.RouterGroup)
}
