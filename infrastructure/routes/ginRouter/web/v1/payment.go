package routev1

import (
	apperrors "safiri.io/application/appErrors"
	"safiri.io/application/controller"
	"safiri.io/application/controller/dto"
	"safiri.io/application/interfaces"

	"github.com/gin-gonic/gin"
)

func PaymentRouter(router *gin.RouterGroup) {
	paymentRouter := router.Group("/payments")
	{
		paymentRouter.POST("/initiate", func(ctx *gin.Context) {
			var body dto.InitiatePaymentDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.InitiatePayment(&interfaces.ApplicationContext[dto.InitiatePaymentDTO]{
				Ctx:    ctx,
				Body:   &body,
				Header: ctx.Request.Header,
			})
		})

		paymentRouter.GET("/:checkoutRequestID", func(ctx *gin.Context) {
			checkoutRequestID := ctx.Param("checkoutRequestID")
			controller.GetPaymentStatus(&interfaces.ApplicationContext[string]{
				Ctx:    ctx,
				Body:   &checkoutRequestID,
				Header: ctx.Request.Header,
			})
		})
	}
}
