package v1

import (
	apperrors "safiri.io/application/appErrors"
	"safiri.io/application/controller"
	"safiri.io/application/interfaces"

	"github.com/gin-gonic/gin"
)

func WebhookRouter(router *gin.RouterGroup) {
	webhookRouter := router.Group("/webhooks")
	{
		webhookRouter.POST("/daraja", func(ctx *gin.Context) {
			body, err := ctx.GetRawData()
			if err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.ProcessDarajaCallback(&interfaces.ApplicationContext[[]byte]{
				Ctx:    ctx,
				Body:   &body,
				Header: ctx.Request.Header,
			})
		})
	}
}
