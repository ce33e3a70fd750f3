package domain

import "math"

// ProfitabilityLevel é uma faixa fixa de rentabilidade sobre a receita.
// Os textos são apenas narrativos e não participam de nenhum cálculo.
type ProfitabilityLevel struct {
	Code            string   `json:"code"`
	Min             float64  `json:"-"`
	Max             float64  `json:"-"`
	Name            string   `json:"name"`
	Characteristics string   `json:"characteristics"`
	Reasons         string   `json:"reasons"`
	Conclusion      string   `json:"conclusion"`
	Recommendations []string `json:"recommendations"`
	Action          string   `json:"action"`
}

var ProfitabilityLevels = []ProfitabilityLevel{
	{
		Code:            "low",
		Min:             math.Inf(-1),
		Max:             20,
		Name:            "Rentabilidade baixa",
		Characteristics: "Rentabilidade ruim, riscos altos ou margem baixa.",
		Reasons:         "Concorrência alta, custos altos de logística e armazenagem, markup baixo.",
		Conclusion:      "O negócio não compensa neste formato, o modelo precisa ser revisto.",
		Recommendations: []string{
			"Revise com urgência a política de preços e o custo do produto.",
			"Procure fornecedores mais vantajosos ou reduza os custos logísticos.",
			"Verifique custos ocultos (armazenagem, devoluções, publicidade) e otimize-os.",
			"Se não houver espaço para crescer, considere encerrar ou trocar de nicho.",
		},
		Action: "Otimizar ou sair",
	},
	{
		Code:            "below_average",
		Min:             20,
		Max:             40,
		Name:            "Abaixo da média",
		Characteristics: "Rentabilidade minimamente aceitável, mas exige otimização.",
		Reasons:         "Concorrência média, custos moderados.",
		Conclusion:      "Risco alto de zerar ou ficar negativo por fatores externos.",
		Recommendations: []string{
			"Aumente a margem com melhor embalagem, vendas adicionais ou marca.",
			"Automatize processos para reduzir custos operacionais.",
			"Teste novos canais de publicidade para aumentar as vendas.",
			"Analise concorrentes em busca de produtos mais vantajosos.",
		},
		Action: "Melhorar e testar outros produtos",
	},
	{
		Code:            "average",
		Min:             40,
		Max:             60,
		Name:            "Rentabilidade média",
		Characteristics: "Nível normal para um negócio estável.",
		Reasons:         "Boa demanda, preço bem definido, custos sob controle.",
		Conclusion:      "Negócio sustentável, pode ser escalado.",
		Recommendations: []string{
			"Foque em estabilidade: controle qualidade e atendimento.",
			"Amplie o sortimento no nicho para aumentar o ticket médio.",
			"Invista na fidelização de clientes (avaliações, mensagens).",
			"Teste nichos vizinhos com margem maior.",
		},
		Action: "Consolidar e crescer",
	},
	{
		Code:            "high",
		Min:             60,
		Max:             100,
		Name:            "Rentabilidade alta",
		Characteristics: "Rentabilidade muito boa, negócio promissor.",
		Reasons:         "Produto único, baixa concorrência, canais de publicidade eficientes.",
		Conclusion:      "Excelente resultado, vale investir mais recursos.",
		Recommendations: []string{
			"Escale ativamente: entre em novos marketplaces ou mercados.",
			"Fortaleça a marca e trabalhe a recompra.",
			"Diversifique fornecedores para reduzir riscos.",
			"Invista parte do lucro em novos produtos de margem alta.",
		},
		Action: "Escalar e proteger",
	},
	{
		Code:            "premium",
		Min:             100,
		Max:             math.Inf(1),
		Name:            "Rentabilidade premium",
		Characteristics: "Negócio de margem alta, geralmente de nicho.",
		Reasons:         "Produtos exclusivos, segmento VIP, ausência de similares diretos.",
		Conclusion:      "Caso raro e valioso, exige proteção da posição.",
		Recommendations: []string{
			"Reforce a exclusividade com marca registrada e condições únicas com fornecedores.",
			"Crie uma reserva financeira de segurança.",
			"Escale até o ponto de eficiência máxima.",
			"Acompanhe a dinâmica do lucro e esteja pronto para buscar novos produtos.",
		},
		Action: "Fortalecer a posição",
	},
}

// LevelFor retorna a faixa correspondente ao percentual de rentabilidade
func LevelFor(profitability float64) ProfitabilityLevel {
	for _, level := range ProfitabilityLevels {
		if profitability >= level.Min && profitability < level.Max {
			return level
		}
	}
	return ProfitabilityLevels[0]
}
