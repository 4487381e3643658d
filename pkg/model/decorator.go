package model

// Decorator enriches a form model after the owning component has built it,
// letting hosts add descriptions, metadata or attachments without forking the
// builder.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// ApplyDecorators runs decorators in order, stopping at the first error.
func ApplyDecorators(form *FormModel, decorators ...Decorator) error {
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return err
		}
	}
	return nil
}
