package mocks

import "resto/infras/otel"

type noopScope struct{}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopScope) AddEvent(string) {}

func (noopScope) End() {}

func (noopScope) SetAttribute(string, any) {}

func (noopScope) SetAttributes(map[string]any) {}

func (noopScope) TraceError(error) {}

func (noopScope) TraceIfError(error) {}
