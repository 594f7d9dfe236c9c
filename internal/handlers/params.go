package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam aceita qualquer valor numérico; a validação de positividade é
// regra do caso de uso.
func idParam(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func idQuery(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
