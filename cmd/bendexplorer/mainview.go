package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MainViewModel wraps the main UI for use as an overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Main model updates are handled in the parent Model's Update
	// This model just provides the View() for overlay
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.model.renderMainView()
}

// dialogModel wraps pre-rendered dialog text as an overlay foreground.
type dialogModel struct {
	content string
}

func newDialogModel(content string) *dialogModel {
	return &dialogModel{content: content}
}

func (d *dialogModel) Init() tea.Cmd {
	return nil
}

func (d *dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return d, nil
}

func (d *dialogModel) View() string {
	return d.content
}
