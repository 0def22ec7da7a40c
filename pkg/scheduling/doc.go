/*
Package scheduling provides task execution primitives for Go applications.

  - workerpool: Fixed worker pool for concurrent task execution

Worker Pool:

The worker pool provides controlled concurrent execution:

	pool, _ := workerpool.New(4, 100) // 4 workers, queue size 100

	task := workerpool.TaskFunc(func(ctx context.Context) error {
		// Do work
		return nil
	})

	pool.Submit(task)
	result := <-pool.Results()
	<-pool.Shutdown()

The simulation runner uses a pool to execute independent runs in parallel.
Pools are safe for concurrent use and pass each task's context through to
Execute.
*/
package scheduling
