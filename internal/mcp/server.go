package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Ezark213/document-classifier-renamer/internal/classify"
	"github.com/Ezark213/document-classifier-renamer/internal/config"
	"github.com/Ezark213/document-classifier-renamer/internal/descriptions"
	"github.com/Ezark213/document-classifier-renamer/internal/extract"
	"github.com/Ezark213/document-classifier-renamer/internal/sorter"
)

// Server exposes the classification engine as MCP tools over stdio.
type Server struct {
	config     *config.Config
	classifier *classify.Classifier
	sorter     *sorter.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, classifier *classify.Classifier, sorterService *sorter.Service) (*Server, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	if sorterService == nil {
		return nil, fmt.Errorf("sorter service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		classifier: classifier,
		sorter:     sorterService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	classifyDocumentTool := mcp.NewTool(
		"classify_document",
		mcp.WithDescription(descriptions.ClassifyDocumentDescription),
		mcp.WithString("text",
			mcp.Description("Extracted document text (may be empty)"),
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.Description("Original filename of the document"),
		),
	)
	s.mcpServer.AddTool(classifyDocumentTool, s.handleClassifyDocument)

	classifyFileTool := mcp.NewTool(
		"classify_file",
		mcp.WithDescription(descriptions.ClassifyFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to a PDF or CSV file"),
		),
	)
	s.mcpServer.AddTool(classifyFileTool, s.handleClassifyFile)

	classifyCSVColumnsTool := mcp.NewTool(
		"classify_csv_columns",
		mcp.WithDescription(descriptions.ClassifyCSVColumnsDescription),
		mcp.WithString("columns",
			mcp.Required(),
			mcp.Description("Comma-separated column names"),
		),
		mcp.WithString("filename",
			mcp.Description("Original filename of the tabular file"),
		),
	)
	s.mcpServer.AddTool(classifyCSVColumnsTool, s.handleClassifyCSVColumns)

	listRulesTool := mcp.NewTool(
		"list_classification_rules",
		mcp.WithDescription(descriptions.ListRulesDescription),
		mcp.WithString("category",
			mcp.Description("Optional category filter (e.g. billing, legal)"),
		),
	)
	s.mcpServer.AddTool(listRulesTool, s.handleListRules)

	splitPDFTool := mcp.NewTool(
		"split_pdf",
		mcp.WithDescription(descriptions.SplitPDFDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF to split"),
		),
		mcp.WithString("output_dir",
			mcp.Required(),
			mcp.Description("Directory to write the single-page PDFs into"),
		),
	)
	s.mcpServer.AddTool(splitPDFTool, s.handleSplitPDF)

	sortDirectoryTool := mcp.NewTool(
		"sort_directory",
		mcp.WithDescription(descriptions.SortDirectoryDescription),
		mcp.WithString("input_dir",
			mcp.Description("Directory to scan (uses configured input directory if empty)"),
		),
		mcp.WithString("output_dir",
			mcp.Description("Directory for renamed files (uses configured output directory if empty)"),
		),
	)
	s.mcpServer.AddTool(sortDirectoryTool, s.handleSortDirectory)
}

// Handler functions

func (s *Server) handleClassifyDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := ""
	if t, ok := request.GetArguments()["text"].(string); ok {
		text = t
	}

	result := s.classifier.Classify(text, filename)
	return mcp.NewToolResultText(s.formatClassification(filename, result)), nil
}

func (s *Server) handleClassifyFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.sorter.ClassifyFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatClassification(path, result)), nil
}

func (s *Server) handleClassifyCSVColumns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	columnsArg, err := request.RequireString("columns")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filename := ""
	if f, ok := request.GetArguments()["filename"].(string); ok {
		filename = f
	}

	var columns []string
	for _, col := range strings.Split(columnsArg, ",") {
		if trimmed := strings.TrimSpace(col); trimmed != "" {
			columns = append(columns, trimmed)
		}
	}

	tabular := classify.ClassifyColumns(columns, filename)
	result := s.classifier.ClassifyCSV(columns, filename)

	text := fmt.Sprintf("Detected data type: %s (confidence %.2f)\n", tabular.DetectedType, tabular.Confidence)
	text += "\nDocument classification:\n"
	text += s.formatClassification(filename, result)

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleListRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := ""
	if c, ok := request.GetArguments()["category"].(string); ok {
		category = c
	}

	table := s.classifier.Table()
	rulesList := table.Rules()
	if category != "" {
		rulesList = table.ByCategory(category)
	}

	if len(rulesList) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No rules found for category: %s", category)), nil
	}

	text := fmt.Sprintf("Classification rules (locale: %s)\n\n", table.Locale())
	for _, r := range rulesList {
		text += fmt.Sprintf("%s  %s (priority %d, category %s, %d keywords)\n",
			r.Code, r.Name, r.Priority, r.Category, len(r.Keywords))
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSplitPDF(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outputDir, err := request.RequireString("output_dir")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := extract.ValidatePDF(path); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pages, err := extract.PageCount(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot create output directory: %v", err)), nil
	}

	if err := extract.SplitPDF(path, outputDir); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Split %s (%d pages) into %s", path, pages, outputDir)), nil
}

func (s *Server) handleSortDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	inputDir := s.config.InputDirectory
	if dir, ok := args["input_dir"].(string); ok && dir != "" {
		inputDir = dir
	}

	outputDir := s.config.OutputDirectory
	if dir, ok := args["output_dir"].(string); ok && dir != "" {
		outputDir = dir
	}

	result, err := s.sorter.SortDirectory(ctx, inputDir, outputDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.formatBatchResult(inputDir, outputDir, result)), nil
}

// Formatting methods

func (s *Server) formatClassification(source string, result classify.Result) string {
	text := fmt.Sprintf("Source: %s\n", source)
	text += fmt.Sprintf("Code: %s\n", result.Code)
	text += fmt.Sprintf("Type: %s\n", result.Name)
	text += fmt.Sprintf("Category: %s\n", result.Category)
	text += fmt.Sprintf("Confidence: %.2f\n", result.Confidence)

	if result.IsFallback() {
		text += "\nNo rule matched confidently; this is the fallback classification.\n"
		return text
	}

	if len(result.MatchedKeywords) > 0 {
		text += fmt.Sprintf("Matched keywords: %s\n", strings.Join(result.MatchedKeywords, ", "))
	}

	return text
}

func (s *Server) formatBatchResult(inputDir, outputDir string, result *sorter.BatchResult) string {
	text := fmt.Sprintf("Sorted %s -> %s\n", inputDir, outputDir)
	text += fmt.Sprintf("Processed: %d, Failed: %d\n", result.Processed, result.Failed)

	if len(result.Files) > 0 {
		text += "\nFiles:\n"
		for i, f := range result.Files {
			if f.Error != "" {
				text += fmt.Sprintf("%d. %s - ERROR: %s\n", i+1, f.OriginalName, f.Error)
				continue
			}
			text += fmt.Sprintf("%d. %s -> %s (%s, confidence %.2f)\n",
				i+1, f.OriginalName, f.NewName, f.TypeName, f.Confidence)
		}
	}

	return text
}

// Run starts the MCP server over stdio.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting document classifier MCP server in stdio mode")
		log.Printf("Rule table locale: %s", s.classifier.Table().Locale())
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
