package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"driversync/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL задает период между запусками задачи.
	TTL() time.Duration

	// Do выполняет один проход задачи.
	Do(context.Context) error

	// Info возвращает имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker владеет набором периодических задач и их горутинами.
type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Прогрев: каждая задача выполняется один раз синхронно, параллельно с
// остальными. Ошибка или паника любой задачи на прогреве отменяет запуск
// целиком - New возвращает ошибку, горутины не стартуют.
// После успешного прогрева каждая задача крутится в своей горутине до
// отмены переданного контекста.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return w, nil
	}

	if err := w.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go w.runPeriodic(ctx, task)
	}

	return w, nil
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		task := task
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					w.log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			w.log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(groupCtx)
		})
	}
	return group.Wait()
}

func (w *Worker) runPeriodic(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

// runOnce изолирует один запуск: паника задачи не роняет процесс.
func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
