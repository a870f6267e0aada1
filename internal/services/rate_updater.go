package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/AgusMolinaCode/P2P-Dashboard-Api.git/internal/logger"
)

// RateUpdater refresca periódicamente la cotización de referencia USDT/USD
// desde CoinGecko y la mantiene en caché para el endpoint /rate.
type RateUpdater struct {
	interval    time.Duration
	isRunning   bool
	stopChan    chan struct{}
	mutex       sync.Mutex
	rate        float64
	lastUpdated time.Time
}

// NewRateUpdater crea el servicio con el intervalo de actualización dado.
func NewRateUpdater(interval time.Duration) *RateUpdater {
	return &RateUpdater{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start inicia el ciclo de actualización en segundo plano.
func (r *RateUpdater) Start() {
	r.mutex.Lock()
	if r.isRunning {
		r.mutex.Unlock()
		return
	}
	r.isRunning = true
	r.mutex.Unlock()

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		// Actualizar inmediatamente al iniciar
		r.refresh()

		for {
			select {
			case <-ticker.C:
				r.refresh()
			case <-r.stopChan:
				return
			}
		}
	}()

	logger.Info(logger.Fields{"interval": r.interval.String()}, "servicio de cotización iniciado")
}

// Stop detiene el ciclo de actualización.
func (r *RateUpdater) Stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !r.isRunning {
		return
	}
	r.isRunning = false
	close(r.stopChan)
	logger.Info(nil, "servicio de cotización detenido")
}

// CurrentRate devuelve la última cotización obtenida y su fecha.
// Devuelve cero si todavía no hubo una actualización exitosa.
func (r *RateUpdater) CurrentRate() (float64, time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.rate, r.lastUpdated
}

func (r *RateUpdater) refresh() {
	rate, err := fetchTetherRate()
	if err != nil {
		logger.Warn(logger.Fields{"error": err.Error()}, "no se pudo actualizar la cotización")
		return
	}

	r.mutex.Lock()
	r.rate = rate
	r.lastUpdated = time.Now()
	r.mutex.Unlock()
}

// fetchTetherRate consulta el precio de USDT en USD desde CoinGecko.
func fetchTetherRate() (float64, error) {
	resp, err := http.Get("https://api.coingecko.com/api/v3/simple/price?ids=tether&vs_currencies=usd")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("respuesta inesperada de CoinGecko: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result map[string]map[string]float64
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	rate, ok := result["tether"]["usd"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("cotización no disponible en la respuesta")
	}
	return rate, nil
}
