package domain

// Dataset é a sequência ordenada e imutável de vendas de um período
type Dataset struct {
	sales []Sale
}

// NewDataset copia as vendas recebidas, o chamador pode reutilizar o slice
func NewDataset(sales []Sale) *Dataset {
	cp := make([]Sale, len(sales))
	copy(cp, sales)
	return &Dataset{sales: cp}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sales)
}

// At retorna a venda na posição i sem copiar o dataset
func (d *Dataset) At(i int) Sale {
	return d.sales[i]
}

func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Records retorna uma cópia das vendas
func (d *Dataset) Records() []Sale {
	if d == nil {
		return nil
	}
	cp := make([]Sale, len(d.sales))
	copy(cp, d.sales)
	return cp
}
