package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Discover probes candidate base URLs in order and returns the first one
// whose /health endpoint answers 2xx. Each probe is abandoned after
// probeTimeout.
func Discover(ctx context.Context, candidates []string, probeTimeout time.Duration, log *zap.SugaredLogger) (string, error) {
	probe := &http.Client{Timeout: probeTimeout}

	for _, candidate := range candidates {
		base := strings.TrimRight(candidate, "/")

		probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
		req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, base+"/health", nil)
		if err != nil {
			cancel()
			continue
		}

		resp, err := probe.Do(req)
		cancel()
		if err != nil {
			log.Debugw("probe failed", "candidate", base, "error", err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
			log.Infow("discovered ledger API", "base", base)
			return base, nil
		}
		log.Debugw("probe rejected", "candidate", base, "status", resp.StatusCode)
	}

	return "", fmt.Errorf("no ledger API found among candidates %v", candidates)
}
