package completion

import (
	"context"
	"sync"

	"driversync/internal/entities"
)

type Phase string

const (
	PhaseCapturing Phase = "capturing"
	PhaseCompleted Phase = "completed"
	PhaseFailed    Phase = "failed"
)

// Flow - двухфазный протокол завершения доставки: сначала proof image
// удерживается на клиенте, затем Submit отправляет результат. Терминальная
// фаза необратима: исправление возможно только новой доставкой или через
// поддержку, UI назад не откатывает.
type Flow struct {
	deliveries Deliveries

	mu    sync.Mutex
	proof []byte
	phase Phase
}

func NewFlow(deliveries Deliveries) *Flow {
	return &Flow{
		deliveries: deliveries,
		phase:      PhaseCapturing,
	}
}

func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Flow) HasProof() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.proof) > 0
}

func (f *Flow) AttachProof(image []byte) error {
	if len(image) == 0 {
		return ErrEmptyProof
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseCapturing {
		return ErrFlowFinished
	}

	held := make([]byte, len(image))
	copy(held, image)
	f.proof = held
	return nil
}

func (f *Flow) ClearProof() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseCapturing {
		return
	}
	f.proof = nil
}

// Submit блокируется локально, если completed=true и proof не удержан -
// до единого сетевого вызова.
func (f *Flow) Submit(ctx context.Context, completed bool, notes string) (*entities.Delivery, error) {
	f.mu.Lock()
	if f.phase != PhaseCapturing {
		f.mu.Unlock()
		return nil, ErrFlowFinished
	}
	if completed && len(f.proof) == 0 {
		f.mu.Unlock()
		return nil, ErrProofRequired
	}
	proof := f.proof
	f.mu.Unlock()

	delivery, err := f.deliveries.CompleteDelivery(ctx, completed, notes, proof)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if completed {
		f.phase = PhaseCompleted
	} else {
		f.phase = PhaseFailed
	}
	f.proof = nil
	f.mu.Unlock()

	return delivery, nil
}
