package constants

// Daraja result codes observed on STK push resolutions.
//
// 0 is the only success code. Everything else is a terminal failure and the
// gateway's description is kept verbatim on the transaction record.
var RESULT_CODE_SUCCESS int = 0
var RESULT_CODE_INSUFFICIENT_FUNDS int = 1
var RESULT_CODE_CANCELLED_BY_USER int = 1032
var RESULT_CODE_REQUEST_TIMEOUT int = 1037

// Error code the status query endpoint returns while the customer has not yet
// acted on the push prompt. Not a failure; the transaction stays INITIATED.
var STK_QUERY_PENDING_CODE = "500.001.1001"

// Daraja caps these request fields.
var MAX_ACCOUNT_REFERENCE_LENGTH = 12
var MAX_TRANSACTION_DESC_LENGTH = 13

var SUPPORT_EMAIL = "help@safiri.io"
