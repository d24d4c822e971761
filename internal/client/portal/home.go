package portal

type ServiceCard struct {
	Title       string
	Description string
	Link        string
}

type NewsItem struct {
	Date        string
	Title       string
	Description string
}

type Stat struct {
	Label string
	Value string
}

// HomeContent is the static landing page.
type HomeContent struct {
	Headline string
	Tagline  string
	Services []ServiceCard
	Stats    []Stat
	News     []NewsItem
	Contacts Contacts
}

type Contacts struct {
	Address []string
	Phone   string
	Email   string
}

func Home() HomeContent {
	return HomeContent{
		Headline: "Justiça • Integridade • Serviço",
		Tagline: "Acesso moderno e transparente aos serviços judiciais. " +
			"Consulte processos, descarregue formulários e mantenha-se informado.",
		Services: []ServiceCard{
			{Title: "Pesquisa de Processos", Description: "Consulte o estado dos seus processos judiciais de forma rápida e segura.", Link: CasesRoute},
			{Title: "Formulários Online", Description: "Aceda e descarregue formulários judiciais organizados por categoria.", Link: FormsRoute},
			{Title: "Calendário de Audiências", Description: "Consulte as audiências agendadas e os horários do tribunal.", Link: HearingsRoute},
		},
		Stats: []Stat{
			{Label: "Processos Ativos", Value: "1,234"},
			{Label: "Utilizadores Registados", Value: "5,678"},
			{Label: "Tempo Médio de Resposta", Value: "24h"},
			{Label: "Segurança Garantida", Value: "100%"},
		},
		News: []NewsItem{
			{Date: "15 Jun 2024", Title: "Novo Sistema de Notificações Eletrónicas", Description: "Implementação de sistema automatizado de notificações para advogados e partes processuais."},
			{Date: "10 Jun 2024", Title: "Horário de Verão do Tribunal", Description: "Durante os meses de verão, o tribunal funcionará das 8h30 às 16h30."},
			{Date: "05 Jun 2024", Title: "Manutenção Programada do Sistema", Description: "O sistema estará indisponível no dia 20 de junho entre as 2h e as 6h para manutenção."},
		},
		Contacts: Contacts{
			Address: []string{"Rua da Justiça, 123", "1000-001 Lisboa"},
			Phone:   "+351 21 123 4567",
			Email:   "info@tribunal.pt",
		},
	}
}
