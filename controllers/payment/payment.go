package paymentControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/EmmanuelOnyekachi21/VioletteStores-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InitiatePaymentInput struct {
	CartCode string `json:"cart_code" binding:"required"`
}

var errVerificationMismatch = errors.New("verification mismatch")

// POST /initiate_payment/
// Sums the unpaid cart, adds the flat tax, records a pending transaction
// and forwards the creation request to the gateway. The gateway's body is
// relayed verbatim, success or error. A network failure leaves the pending
// transaction row in place for later reconciliation.
func InitiatePayment(db *gorm.DB, gw *Gateway, currency string, tax decimal.Decimal) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input InitiatePaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items.Product").
			Where("cart_code = ? AND paid = ?", input.CartCode, false).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		amount := decimal.Zero
		for _, item := range cart.Items {
			amount = amount.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		amount = amount.Add(tax)

		txn := models.Transaction{
			Ref:      uuid.NewString(),
			CartID:   cart.ID,
			Amount:   amount,
			Currency: currency,
			Status:   models.TransactionPending,
			UserID:   &user.ID,
		}
		if err := db.Create(&txn).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
			return
		}

		status, body, err := gw.CreatePayment(PaymentRequest{
			TxRef:       txn.Ref,
			Amount:      amount.StringFixed(2),
			Currency:    currency,
			RedirectURL: gw.RedirectURL,
			Customer: Customer{
				Email:       user.Email,
				Name:        user.FirstName + " " + user.LastName,
				PhoneNumber: user.Phone,
			},
		})
		if err != nil {
			log.Printf("payment initiation failed for ref %s: %v", txn.Ref, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate payment"})
			return
		}

		c.Data(status, "application/json", body)
	}
}

// GET /payment_callback/?status=...&tx_ref=...&transaction_id=...
// Finalizes a transaction only when the gateway reports success and the
// verified amount, currency and status all match the stored row. The
// read-verify-write runs inside one DB transaction with a status-guarded
// update, so two concurrent callbacks cannot double-complete.
func PaymentCallback(db *gorm.DB, gw *Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Query("status")
		txRef := c.Query("tx_ref")
		transactionID := c.Query("transaction_id")

		if status != "successful" {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":     "Payment was not successful",
				"sub_message": "The payment attempt was not completed",
			})
			return
		}

		verify, err := gw.VerifyTransaction(transactionID)
		if err != nil {
			log.Printf("verification call failed for ref %s: %v", txRef, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":     "Failed to verify transaction",
				"sub_message": "We could not verify your payment",
			})
			return
		}

		var callbackUser *uint
		if userIDVal, ok := c.Get("user_id"); ok {
			uid := userIDVal.(uint)
			callbackUser = &uid
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var txn models.Transaction
			if err := tx.Where("ref = ?", txRef).First(&txn).Error; err != nil {
				return err
			}

			if verify.Data.Status != "successful" ||
				!verify.Data.Amount.Equal(txn.Amount) ||
				verify.Data.Currency != txn.Currency {
				return errVerificationMismatch
			}

			// Guard on the stored status: a second callback for the same ref
			// finds zero rows and skips the cart update.
			res := tx.Model(&models.Transaction{}).
				Where("id = ? AND status = ?", txn.ID, models.TransactionPending).
				Update("status", models.TransactionCompleted)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}

			cartUser := txn.UserID
			if callbackUser != nil {
				cartUser = callbackUser
			}
			return tx.Model(&models.Cart{}).
				Where("id = ?", txn.CartID).
				Updates(map[string]interface{}{"paid": true, "user_id": cartUser}).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			if errors.Is(err, errVerificationMismatch) {
				c.JSON(http.StatusBadRequest, gin.H{
					"message":     "Payment verification failed",
					"sub_message": "Your payment verification failed",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize transaction"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "Payment successful!",
			"sub_message": "You have successfully made payment",
		})
	}
}
