package dist

import (
	"context"
	"fmt"
	"math"

	"github.com/probkit/sampledist/common"
	"github.com/probkit/sampledist/model"
	"github.com/probkit/sampledist/utils"
	"go.uber.org/zap"
)

// QuantileSummary inverts d at each probability in probs and returns
// the quantile values keyed by probability. An empty probs uses
// DefaultQuantiles. Probabilities whose inversion fails (NaN, as for
// the degenerate fallback distribution) are skipped.
func QuantileSummary(ctx context.Context, d Distribution, probs []float64) (*model.QuantileSummary, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("QuantileSummary recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	if d == nil {
		return nil, common.ErrorInvalidValue
	}
	if len(probs) == 0 {
		probs = DefaultQuantiles
	}

	quantileValues := map[string]*model.QuantileValue{}

	for _, p := range probs {
		if p < 0 || p > 1 {
			logger.Error("probability out of range, skip", zap.Float64("prob", p))
			continue
		}
		value := InvCDF(d, p)
		if math.IsNaN(value) {
			logger.Error("quantile inversion failed, skip", zap.Float64("prob", p))
			continue
		}
		quantileValues[fmt.Sprintf("%v", p)] = &model.QuantileValue{
			Quantile: p,
			Value:    utils.FormatFloat(value, QuantileValueRound),
		}
	}

	return &model.QuantileSummary{
		QuantileValues: quantileValues,
	}, nil
}
