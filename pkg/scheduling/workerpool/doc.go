/*
Package workerpool provides a fixed-size pool of goroutines for independent tasks.

The simulation runner uses it to execute several propagation runs side by
side; each run owns all of its state, so tasks never share mutable data.

Basic usage:

	pool, err := workerpool.NewWithConfig(workerpool.Config{
		WorkerCount:     3,
		QueueSize:       3,
		BufferedResults: true,
	})
	if err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		pool.Submit(workerpool.TaskFunc(func(ctx context.Context) error {
			return doWork(ctx)
		}))
	}

	for i := 0; i < 3; i++ {
		if res := <-pool.Results(); res.Error != nil {
			log.Println(res.Error)
		}
	}
	<-pool.Shutdown()

Results must be drained: a worker waits until its result is received or
buffered. Shutdown stops new submissions, runs whatever is still queued and
closes the Results channel once every worker has exited.

Task panics are recovered and reported as errors in the Result. TaskTimeout
bounds each task's context.

NewWithMetrics records pool size, active workers, queue depth, task
durations and outcomes in a metrics.Registry.
*/
package workerpool
