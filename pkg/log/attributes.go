// Package log defines standard attribute keys for regression operations.
//
// Using these keys keeps log records from the library, the command line tools
// and user code consistent, so they can be filtered and aggregated. Keys follow
// a hierarchical naming convention ("model.name", "data.samples").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "Regression"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a caller-chosen identifier for a model instance.
	// Set through linear.WithName.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "fit_predict"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear", "dataset", "plot"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples in the dataset.
	SamplesKey = "data.samples"

	// SourceKey names where the data was read from (a file path or "stdin").
	SourceKey = "data.source"
)

// Fitted Parameters and Metrics
const (
	// SlopeKey records the fitted slope of the line.
	SlopeKey = "model.slope"

	// InterceptKey records the fitted intercept of the line.
	InterceptKey = "model.intercept"

	// R2ScoreKey records R² coefficient of determination.
	// Range [-∞, 1.0], with 1.0 being perfect prediction.
	R2ScoreKey = "metrics.r2_score"

	// MSEKey records the mean squared error.
	MSEKey = "metrics.mse"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Prediction and Output Context
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"

	// OutputKey names where results were written.
	OutputKey = "output.path"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Values come from pkg/errors: "INVALID_INPUT", "DEGENERATE_INPUT", "NOT_FITTED"
	ErrorCodeKey = "error.code"
)

// Standard attribute value constants for common operations.
const (
	OperationFit        = "fit"
	OperationPredict    = "predict"
	OperationScore      = "score"
	OperationFitPredict = "fit_predict"
	OperationLoad       = "load"
	OperationRender     = "render"
)
