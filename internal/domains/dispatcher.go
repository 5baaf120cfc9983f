package domains

import "context"

const DispatcherName = "dispatcher"

type Dispatcher interface {
	Run(ctx context.Context) error
}
